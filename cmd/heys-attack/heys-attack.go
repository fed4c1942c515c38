// Command heys-attack runs a linear cryptanalysis of the Heys SPN cipher
// over newline-delimited binary-string vector files. It can generate
// known-plaintext corpora, estimate the bias of a relation under a single
// key guess, and rank candidate last-round keys by observed bias.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/xuganyu96/linear-cryptanalysis/heys"
	"github.com/xuganyu96/linear-cryptanalysis/internal/vectors"
	"github.com/xuganyu96/linear-cryptanalysis/linear"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	app := &cli.App{
		Name:  "heys-attack",
		Usage: "linear cryptanalysis of the Heys SPN cipher",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file"},
			&cli.StringFlag{Name: "plaintexts", Aliases: []string{"p"}, Usage: "plaintext vector file"},
			&cli.StringFlag{Name: "ciphertexts", Aliases: []string{"c"}, Usage: "ciphertext vector file"},
			&cli.StringFlag{Name: "relation", Aliases: []string{"r"}, Usage: "relation to evaluate (section34 or allsboxes)"},
		},
		Commands: []*cli.Command{
			genCommand(log),
			biasCommand(log),
			searchCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("attack failed")
	}
}

func genCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "gen",
		Usage: "generate a known-plaintext corpus and write it to vector files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "keys", Usage: "comma-separated list of the 5 round keys (random when empty)"},
			&cli.Uint64Flag{Name: "seed", Usage: "seed for random round keys"},
			&cli.IntFlag{Name: "count", Usage: "number of pairs to keep (full codebook when 0)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			var keys []int
			if s := c.String("keys"); s != "" {
				if keys, err = parseKeys(s); err != nil {
					return err
				}
			} else {
				rng := rand.New(rand.NewPCG(c.Uint64("seed"), 0))
				for range 5 {
					keys = append(keys, rng.IntN(1<<16))
				}
				log.Info().
					Str("k5", fmt.Sprintf("0x%04x", keys[4])).
					Msg("generated random round keys")
			}

			cipher, err := heys.NewCipher(keys)
			if err != nil {
				return err
			}

			pts, cts := linear.GenerateCorpus(cipher)
			if count := c.Int("count"); count > 0 && count < len(pts) {
				pts, cts = pts[:count], cts[:count]
			}

			if err := vectors.WriteFile(cfg.Plaintexts, pts); err != nil {
				return err
			}
			if err := vectors.WriteFile(cfg.Ciphertexts, cts); err != nil {
				return err
			}
			log.Info().
				Int("pairs", len(pts)).
				Str("plaintexts", cfg.Plaintexts).
				Str("ciphertexts", cfg.Ciphertexts).
				Msg("corpus written")
			return nil
		},
	}
}

func biasCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "bias",
		Usage: "estimate the bias of a relation under a single last-round key guess",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "guess", Required: true, Usage: "guessed last-round key"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			relation, err := relationByName(cfg.Relation)
			if err != nil {
				return err
			}
			pts, cts, err := loadCorpus(cfg)
			if err != nil {
				return err
			}

			key, err := strconv.ParseUint(c.String("guess"), 0, 16)
			if err != nil {
				return fmt.Errorf("guess %q: %w", c.String("guess"), err)
			}
			guess, err := heys.NewCipher([]int{0, 0, 0, 0, int(key)})
			if err != nil {
				return err
			}

			bias, err := linear.EstimateBias(pts, cts, guess, relation)
			if err != nil {
				return err
			}
			log.Info().
				Str("relation", relation.Name()).
				Int("pairs", len(pts)).
				Msg("bias estimated")
			fmt.Printf("bias: %.8f\n", bias)
			return nil
		},
	}
}

func searchCommand(log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "rank candidate last-round keys by observed bias",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "mask", Usage: "restrict the search to keys within this bitmask"},
			&cli.IntFlag{Name: "workers", Usage: "number of parallel workers"},
			&cli.IntFlag{Name: "top", Usage: "number of candidates to print"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			relation, err := relationByName(cfg.Relation)
			if err != nil {
				return err
			}
			pts, cts, err := loadCorpus(cfg)
			if err != nil {
				return err
			}

			mask, err := strconv.ParseUint(cfg.Mask, 0, 16)
			if err != nil {
				return fmt.Errorf("mask %q: %w", cfg.Mask, err)
			}

			start := time.Now()
			candidates, err := linear.SearchLastRoundKey(c.Context, pts, cts, relation, linear.SearchOptions{
				KeyMask: uint16(mask),
				Workers: cfg.Workers,
			})
			if err != nil {
				return err
			}
			log.Info().
				Str("relation", relation.Name()).
				Int("pairs", len(pts)).
				Int("candidates", len(candidates)).
				Dur("elapsed", time.Since(start)).
				Msg("search complete")

			top := max(0, min(cfg.Top, len(candidates)))
			for _, candidate := range candidates[:top] {
				fmt.Printf("K5 candidate: 0x%04x, observed bias: %.6f\n",
					uint16(candidate.Key), candidate.Bias)
			}
			return nil
		},
	}
}

func relationByName(name string) (linear.Relation, error) {
	switch name {
	case "section34":
		return linear.Section34(), nil
	case "allsboxes":
		return linear.AllSBoxes(), nil
	default:
		return linear.Relation{}, fmt.Errorf("unknown relation %q", name)
	}
}

func loadCorpus(cfg *Config) (pts, cts []heys.Block, err error) {
	if pts, err = vectors.ReadFile(cfg.Plaintexts); err != nil {
		return nil, nil, err
	}
	if cts, err = vectors.ReadFile(cfg.Ciphertexts); err != nil {
		return nil, nil, err
	}
	return pts, cts, nil
}

func parseKeys(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, part := range parts {
		k, err := strconv.ParseUint(strings.TrimSpace(part), 0, 16)
		if err != nil {
			return nil, fmt.Errorf("round key %q: %w", part, err)
		}
		keys = append(keys, int(k))
	}
	return keys, nil
}
