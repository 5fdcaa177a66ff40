package main

import (
	"fmt"
	"math/big"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	clmm "clmm-simulator"
)

func main() {
	root := &cobra.Command{
		Use:          "clmm-sim",
		Short:        "Concentrated-liquidity swap step calculator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.PersistentFlags().Float64("price-low", 4545, "lower bound of the position range")
	root.PersistentFlags().Float64("price-high", 5500, "upper bound of the position range")
	root.PersistentFlags().Float64("price-current", 5000, "current pool price")
	root.PersistentFlags().Float64("amount0", 1, "token0 deposit in token units")
	root.PersistentFlags().Float64("amount1", 5000, "token1 deposit in token units")
	root.PersistentFlags().Bool("json", false, "emit results as JSON")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Size a position from a dual-asset deposit",
		RunE:  runQuote,
	}
	root.AddCommand(quoteCmd)

	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "Simulate a single exact-input swap step",
		RunE:  runSwap,
	}
	swapCmd.Flags().Float64("amount-in", 42, "exact input amount in token units")
	swapCmd.Flags().String("sell", "asset1", "asset sold into the pool (asset0 or asset1)")
	root.AddCommand(swapCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// scenario is the pool state shared by both commands, derived once from
// the configured prices and deposit.
type scenario struct {
	cfg              Config
	sqrtPriceLowX96  *big.Int
	sqrtPriceHighX96 *big.Int
	sqrtPriceCurX96  *big.Int
	position         *clmm.Position
}

type quoteResult struct {
	TickLow          int    `json:"tickLow"`
	TickHigh         int    `json:"tickHigh"`
	TickCurrent      int    `json:"tickCurrent"`
	SqrtPriceLowX96  string `json:"sqrtPriceLowX96"`
	SqrtPriceHighX96 string `json:"sqrtPriceHighX96"`
	SqrtPriceCurX96  string `json:"sqrtPriceCurrentX96"`
	Liquidity        string `json:"liquidity"`
	Amount0          string `json:"amount0"`
	Amount1          string `json:"amount1"`
}

type swapResult struct {
	Direction        string  `json:"direction"`
	SqrtPriceNextX96 string  `json:"sqrtPriceNextX96"`
	PriceNext        float64 `json:"priceNext"`
	TickNext         int     `json:"tickNext"`
	AmountIn         string  `json:"amountIn"`
	AmountOut        string  `json:"amountOut"`
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sc, err := buildScenario(cfg)
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}

	res, err := quote(sc)
	if err != nil {
		return fmt.Errorf("quote position: %w", err)
	}
	logger.Info("position sized",
		zap.String("liquidity", res.Liquidity),
		zap.Int("tickLow", res.TickLow),
		zap.Int("tickHigh", res.TickHigh),
	)

	if cfg.JSON {
		return emitJSON(res)
	}
	fmt.Printf("range: %v-%v (ticks %d..%d), current %v (tick %d)\n",
		cfg.PriceLow, cfg.PriceHigh, res.TickLow, res.TickHigh, cfg.PriceCurrent, res.TickCurrent)
	fmt.Printf("liquidity: %s\n", res.Liquidity)
	fmt.Printf("amounts locked: %s token0, %s token1\n", res.Amount0, res.Amount1)
	return nil
}

func runSwap(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sc, err := buildScenario(cfg)
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}

	direction := clmm.SellAsset1
	if cfg.Sell == "asset0" {
		direction = clmm.SellAsset0
	}
	amountIn := tokenToWei(cfg.AmountIn)

	step, err := clmm.SimulateSwapStepInRange(sc.position, sc.sqrtPriceCurX96, amountIn, direction)
	if err != nil {
		return fmt.Errorf("simulate swap step: %w", err)
	}

	priceNext, err := clmm.SqrtPriceX96ToPrice(step.SqrtPriceNextX96)
	if err != nil {
		return err
	}
	tickNext, err := clmm.PriceToTick(priceNext)
	if err != nil {
		return err
	}

	res := &swapResult{
		Direction:        direction.String(),
		SqrtPriceNextX96: step.SqrtPriceNextX96.String(),
		PriceNext:        priceNext,
		TickNext:         tickNext,
		AmountIn:         weiToToken(step.AmountIn),
		AmountOut:        weiToToken(step.AmountOut),
	}
	logger.Info("swap step settled",
		zap.String("direction", res.Direction),
		zap.Float64("priceNext", res.PriceNext),
		zap.Int("tickNext", res.TickNext),
	)

	if cfg.JSON {
		return emitJSON(res)
	}
	fmt.Printf("selling %v of %s\n", cfg.AmountIn, cfg.Sell)
	fmt.Printf("new price: %v (tick %d)\n", res.PriceNext, res.TickNext)
	fmt.Printf("new sqrtP: %s\n", res.SqrtPriceNextX96)
	fmt.Printf("in:  %s\n", res.AmountIn)
	fmt.Printf("out: %s\n", res.AmountOut)
	return nil
}

func buildScenario(cfg Config) (*scenario, error) {
	sqrtLow, err := clmm.PriceToSqrtPriceX96(cfg.PriceLow)
	if err != nil {
		return nil, err
	}
	sqrtHigh, err := clmm.PriceToSqrtPriceX96(cfg.PriceHigh)
	if err != nil {
		return nil, err
	}
	sqrtCur, err := clmm.PriceToSqrtPriceX96(cfg.PriceCurrent)
	if err != nil {
		return nil, err
	}

	position, err := clmm.NewPositionFromAmounts(
		sqrtCur, sqrtLow, sqrtHigh,
		tokenToWei(cfg.Amount0), tokenToWei(cfg.Amount1),
	)
	if err != nil {
		return nil, err
	}

	return &scenario{
		cfg:              cfg,
		sqrtPriceLowX96:  sqrtLow,
		sqrtPriceHighX96: sqrtHigh,
		sqrtPriceCurX96:  sqrtCur,
		position:         position,
	}, nil
}

func quote(sc *scenario) (*quoteResult, error) {
	tickLow, err := clmm.PriceToTick(sc.cfg.PriceLow)
	if err != nil {
		return nil, err
	}
	tickHigh, err := clmm.PriceToTick(sc.cfg.PriceHigh)
	if err != nil {
		return nil, err
	}
	tickCur, err := clmm.PriceToTick(sc.cfg.PriceCurrent)
	if err != nil {
		return nil, err
	}

	amount0, amount1, err := sc.position.Amounts(sc.sqrtPriceCurX96)
	if err != nil {
		return nil, err
	}

	return &quoteResult{
		TickLow:          tickLow,
		TickHigh:         tickHigh,
		TickCurrent:      tickCur,
		SqrtPriceLowX96:  sc.sqrtPriceLowX96.String(),
		SqrtPriceHighX96: sc.sqrtPriceHighX96.String(),
		SqrtPriceCurX96:  sc.sqrtPriceCurX96.String(),
		Liquidity:        sc.position.Liquidity.String(),
		Amount0:          weiToToken(amount0),
		Amount1:          weiToToken(amount1),
	}, nil
}

func emitJSON(v any) error {
	data, err := sonnet.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// tokenToWei converts a whole-token amount to its smallest unit under the
// 18-decimal convention.
func tokenToWei(amount float64) *big.Int {
	return decimal.NewFromFloat(amount).Shift(18).BigInt()
}

func weiToToken(amount *big.Int) string {
	return decimal.NewFromBigInt(amount, -18).String()
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
