package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/magical/go-tinyjambu"
	"github.com/magical/go-tinyjambu/config"
	"github.com/magical/go-tinyjambu/internal/metrics"
	"github.com/magical/go-tinyjambu/log"
)

// Automatically set through -ldflags
// Example: go build -ldflags "-X main.version=`git describe --tags`
//   -X main.buildDate=`date -u +%d/%m/%Y@%H:%M:%S` -X main.gitCommit=`git rev-parse HEAD`"
var (
	version   = "master"
	gitCommit = "none"
	buildDate = "unknown"
)

var output io.Writer = os.Stdout

func banner() {
	fmt.Fprintf(output, "tinyjambu %v (date %v, commit %v)\n", version, buildDate, gitCommit)
}

var configFlag = &cli.StringFlag{
	Name:  "config",
	Usage: "Path to a tinyjambu.toml configuration file. Missing is not an error.",
}

var variantFlag = &cli.StringFlag{
	Name:  "variant",
	Usage: "Key size variant to use: 128, 192, or 256. Defaults to the config file's [default] variant.",
}

var verboseFlag = &cli.BoolFlag{
	Name:  "verbose",
	Usage: "If set, the CLI logs at debug level.",
}

var jsonLogFlag = &cli.BoolFlag{
	Name:  "json-log",
	Usage: "Emit CLI log lines as JSON instead of console-formatted text.",
}

var keyFlag = &cli.StringFlag{
	Name:  "key",
	Usage: "Key, hex-encoded. Mutually exclusive with --key-file.",
}

var keyFileFlag = &cli.StringFlag{
	Name:  "key-file",
	Usage: "Path to a file holding the raw (non-hex) key bytes.",
}

var nonceFlag = &cli.StringFlag{
	Name:  "nonce",
	Usage: "Nonce, hex-encoded. Required: 12 bytes (24 hex characters).",
}

var adFlag = &cli.StringFlag{
	Name:  "ad",
	Usage: "Associated data, hex-encoded. Optional.",
}

var inFlag = &cli.StringFlag{
	Name:  "in",
	Usage: "Input file. Defaults to stdin.",
}

var outFlag = &cli.StringFlag{
	Name:  "out",
	Usage: "Output file. Defaults to stdout.",
}

var hexFlag = &cli.BoolFlag{
	Name:  "hex",
	Usage: "Read/write the ciphertext or plaintext body as hex instead of raw bytes.",
}

var sizeFlag = &cli.IntFlag{
	Name:  "size",
	Usage: "Plaintext size, in bytes, for the bench subcommand.",
	Value: 4096,
}

// CLI builds the tinyjambu command-line application.
func CLI() *cli.App {
	app := cli.NewApp()
	app.Name = "tinyjambu"
	app.Usage = "encrypt, decrypt, and benchmark with the TinyJambu AEAD cipher"
	app.Version = version
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintf(output, "tinyjambu %v (date %v, commit %v)\n", version, buildDate, gitCommit)
	}
	app.Flags = toArray(configFlag, variantFlag, verboseFlag, jsonLogFlag)
	app.Commands = []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Seal plaintext into ciphertext || tag (the nonce is not included).",
			Flags: toArray(keyFlag, keyFileFlag, nonceFlag, adFlag, inFlag, outFlag, hexFlag),
			Action: func(c *cli.Context) error {
				banner()
				return encryptCmd(c)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Open a ciphertext || tag blob back into plaintext, using the nonce given by --nonce.",
			Flags: toArray(keyFlag, keyFileFlag, nonceFlag, adFlag, inFlag, outFlag, hexFlag),
			Action: func(c *cli.Context) error {
				banner()
				return decryptCmd(c)
			},
		},
		{
			Name:  "genkey",
			Usage: "Generate a random key for the selected variant.",
			Flags: toArray(outFlag),
			Action: func(c *cli.Context) error {
				return genkeyCmd(c)
			},
		},
		{
			Name:  "bench",
			Usage: "Measure Seal/Open throughput and publish it as Prometheus gauges.",
			Flags: toArray(sizeFlag),
			Action: func(c *cli.Context) error {
				banner()
				return benchCmd(c)
			},
		},
	}
	return app
}

func toArray(flags ...cli.Flag) []cli.Flag {
	return flags
}

func contextToLogger(c *cli.Context) log.Logger {
	level := log.InfoLevel
	if c.Bool(verboseFlag.Name) {
		level = log.DebugLevel
	}
	return log.New(os.Stderr, level, c.Bool(jsonLogFlag.Name))
}

func contextToConfig(c *cli.Context) (config.Config, error) {
	return config.Load(c.String(configFlag.Name))
}

func contextToVariant(c *cli.Context, cfg config.Config) (tinyjambu.Variant, error) {
	name := c.String(variantFlag.Name)
	if name == "" {
		name = cfg.Default.Variant
	}
	switch name {
	case config.Variant128:
		return tinyjambu.Variant128, nil
	case config.Variant192:
		return tinyjambu.Variant192, nil
	case config.Variant256:
		return tinyjambu.Variant256, nil
	default:
		return 0, fmt.Errorf("tinyjambu: unknown variant %q", name)
	}
}

func variantKeySize(v tinyjambu.Variant) int {
	switch v {
	case tinyjambu.Variant128:
		return tinyjambu.KeySize128
	case tinyjambu.Variant192:
		return tinyjambu.KeySize192
	default:
		return tinyjambu.KeySize256
	}
}

func newAEAD(v tinyjambu.Variant, key []byte) (aead, error) {
	switch v {
	case tinyjambu.Variant128:
		return tinyjambu.NewAEAD128(key)
	case tinyjambu.Variant192:
		return tinyjambu.NewAEAD192(key)
	default:
		return tinyjambu.NewAEAD256(key)
	}
}

// aead is the subset of crypto/cipher.AEAD the CLI needs; all three
// tinyjambu AEAD types satisfy it.
type aead interface {
	NonceSize() int
	Overhead() int
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

func loadKey(c *cli.Context, keySize int) ([]byte, error) {
	switch {
	case c.String(keyFlag.Name) != "" && c.String(keyFileFlag.Name) != "":
		return nil, fmt.Errorf("tinyjambu: specify only one of --key or --key-file")
	case c.String(keyFlag.Name) != "":
		key, err := hex.DecodeString(c.String(keyFlag.Name))
		if err != nil {
			return nil, fmt.Errorf("tinyjambu: decoding --key: %w", err)
		}
		return key, checkKeySize(key, keySize)
	case c.String(keyFileFlag.Name) != "":
		key, err := os.ReadFile(c.String(keyFileFlag.Name))
		if err != nil {
			return nil, fmt.Errorf("tinyjambu: reading --key-file: %w", err)
		}
		return key, checkKeySize(key, keySize)
	default:
		return nil, fmt.Errorf("tinyjambu: one of --key or --key-file is required")
	}
}

func checkKeySize(key []byte, want int) error {
	if len(key) != want {
		return fmt.Errorf("tinyjambu: key is %d bytes, variant needs %d", len(key), want)
	}
	return nil
}

func loadNonce(c *cli.Context) ([]byte, error) {
	nonce, err := hex.DecodeString(c.String(nonceFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("tinyjambu: decoding --nonce: %w", err)
	}
	if len(nonce) != tinyjambu.NonceSize {
		return nil, fmt.Errorf("tinyjambu: nonce is %d bytes, want %d", len(nonce), tinyjambu.NonceSize)
	}
	return nonce, nil
}

func loadAD(c *cli.Context) ([]byte, error) {
	if c.String(adFlag.Name) == "" {
		return nil, nil
	}
	ad, err := hex.DecodeString(c.String(adFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("tinyjambu: decoding --ad: %w", err)
	}
	return ad, nil
}

func readInput(c *cli.Context) ([]byte, error) {
	if path := c.String(inFlag.Name); path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return decodeBody(c, body)
	}
	body, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}
	return decodeBody(c, body)
}

func decodeBody(c *cli.Context, body []byte) ([]byte, error) {
	if !c.Bool(hexFlag.Name) {
		return body, nil
	}
	decoded, err := hex.DecodeString(string(trimNewline(body)))
	if err != nil {
		return nil, fmt.Errorf("tinyjambu: decoding hex input: %w", err)
	}
	return decoded, nil
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func writeOutput(c *cli.Context, body []byte) error {
	if c.Bool(hexFlag.Name) {
		body = []byte(hex.EncodeToString(body) + "\n")
	}
	if path := c.String(outFlag.Name); path != "" {
		return os.WriteFile(path, body, 0o600)
	}
	_, err := os.Stdout.Write(body)
	return err
}

func encryptCmd(c *cli.Context) error {
	logger := contextToLogger(c)
	cfg, err := contextToConfig(c)
	if err != nil {
		return err
	}
	v, err := contextToVariant(c, cfg)
	if err != nil {
		return err
	}
	key, err := loadKey(c, variantKeySize(v))
	if err != nil {
		return err
	}
	nonce, err := loadNonce(c)
	if err != nil {
		return err
	}
	ad, err := loadAD(c)
	if err != nil {
		return err
	}
	pt, err := readInput(c)
	if err != nil {
		return err
	}
	a, err := newAEAD(v, key)
	if err != nil {
		return err
	}
	logger.Infow("sealing", "variant", v.String(), "plaintext_bytes", len(pt), "ad_bytes", len(ad))
	ct := a.Seal(nil, nonce, pt, ad)
	return writeOutput(c, ct)
}

func decryptCmd(c *cli.Context) error {
	logger := contextToLogger(c)
	cfg, err := contextToConfig(c)
	if err != nil {
		return err
	}
	v, err := contextToVariant(c, cfg)
	if err != nil {
		return err
	}
	key, err := loadKey(c, variantKeySize(v))
	if err != nil {
		return err
	}
	nonce, err := loadNonce(c)
	if err != nil {
		return err
	}
	ad, err := loadAD(c)
	if err != nil {
		return err
	}
	ct, err := readInput(c)
	if err != nil {
		return err
	}
	a, err := newAEAD(v, key)
	if err != nil {
		return err
	}
	logger.Infow("opening", "variant", v.String(), "ciphertext_bytes", len(ct), "ad_bytes", len(ad))
	pt, err := a.Open(nil, nonce, ct, ad)
	if err != nil {
		logger.Errorw("authentication failed", "variant", v.String())
		return err
	}
	return writeOutput(c, pt)
}

func genkeyCmd(c *cli.Context) error {
	cfg, err := contextToConfig(c)
	if err != nil {
		return err
	}
	v, err := contextToVariant(c, cfg)
	if err != nil {
		return err
	}
	key := make([]byte, variantKeySize(v))
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("tinyjambu: generating key: %w", err)
	}
	body := []byte(hex.EncodeToString(key) + "\n")
	if path := c.String(outFlag.Name); path != "" {
		return os.WriteFile(path, body, 0o600)
	}
	_, err = os.Stdout.Write(body)
	return err
}

func benchCmd(c *cli.Context) error {
	logger := contextToLogger(c)
	cfg, err := contextToConfig(c)
	if err != nil {
		return err
	}
	v, err := contextToVariant(c, cfg)
	if err != nil {
		return err
	}

	size := c.Int(sizeFlag.Name)
	if size <= 0 {
		size = int(cfg.Benchmark.SampleSize)
	}

	key := make([]byte, variantKeySize(v))
	nonce := make([]byte, tinyjambu.NonceSize)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	pt := make([]byte, size)
	if _, err := rand.Read(pt); err != nil {
		return err
	}

	a, err := newAEAD(v, key)
	if err != nil {
		return err
	}

	const rounds = 32
	start := time.Now()
	var ct []byte
	for i := 0; i < rounds; i++ {
		ct = a.Seal(nil, nonce, pt, nil)
	}
	sealElapsed := time.Since(start)

	start = time.Now()
	for i := 0; i < rounds; i++ {
		if _, err := a.Open(nil, nonce, ct, nil); err != nil {
			return fmt.Errorf("tinyjambu: bench self-test failed: %w", err)
		}
	}
	openElapsed := time.Since(start)

	sealBps := throughput(size, rounds, sealElapsed)
	openBps := throughput(size, rounds, openElapsed)

	metrics.SealThroughput.WithLabelValues(v.String(), tinyjambu.UnrollingName).Set(sealBps)
	metrics.OpenThroughput.WithLabelValues(v.String(), tinyjambu.UnrollingName).Set(openBps)

	logger.Infow("bench complete",
		"variant", v.String(),
		"unrolling", tinyjambu.UnrollingName,
		"seal_bytes_per_second", sealBps,
		"open_bytes_per_second", openBps,
	)
	fmt.Fprintf(output, "%s (%s): seal %.0f B/s, open %.0f B/s\n", v.String(), tinyjambu.UnrollingName, sealBps, openBps)
	return nil
}

func throughput(size, rounds int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(size*rounds) / elapsed.Seconds()
}
