package integrations

import (
	"fmt"
	"os/exec"

	"github.com/caarlos0/env/v11"
)

// Config holds the publisher's remote settings, read from the environment.
// The wrangler session itself is assumed to be already authenticated.
type Config struct {
	Bin         string `env:"WRANGLER_BIN" envDefault:"wrangler"`
	Namespace   string `env:"ICONPACK_KV_NAMESPACE" envDefault:"ICONS"`
	Bucket      string `env:"ICONPACK_BUCKET" envDefault:"icon-assets"`
	Concurrency int    `env:"ICONPACK_CONCURRENCY" envDefault:"15"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse publisher config: %w", err)
	}
	return cfg, nil
}

// Wrangler drives the Cloudflare CLI: every upload is one external process
// invocation, so concurrent uploads never share in-process state.
type Wrangler struct {
	cfg Config

	// run is swapped out in tests.
	run func(bin string, args ...string) error
}

func NewWrangler(cfg Config) *Wrangler {
	return &Wrangler{
		cfg: cfg,
		run: func(bin string, args ...string) error {
			return exec.Command(bin, args...).Run()
		},
	}
}

func (w *Wrangler) PutKV(key, path string) error {
	err := w.run(w.cfg.Bin,
		"kv", "key", "put", key,
		"--path", path,
		"--namespace-id", w.cfg.Namespace,
		"--remote",
	)
	if err != nil {
		return fmt.Errorf("wrangler kv put %s: %w", key, err)
	}
	return nil
}

func (w *Wrangler) PutObject(key, path, contentType string) error {
	err := w.run(w.cfg.Bin,
		"r2", "object", "put", w.cfg.Bucket+"/"+key,
		"--file", path,
		"--content-type", contentType,
		"--remote",
	)
	if err != nil {
		return fmt.Errorf("wrangler r2 put %s: %w", key, err)
	}
	return nil
}
