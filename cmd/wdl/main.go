package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordlehelper/console"
	"github.com/powellquiring/wordlehelper/dictionary"
	"github.com/powellquiring/wordlehelper/gowordle"
	"github.com/powellquiring/wordlehelper/httpapi"
	"github.com/powellquiring/wordlehelper/wordle"
)

type GlobalConfiguration struct {
	dictionary []string
	wordLength int
	filter     string
	color      bool
	logger     zerolog.Logger
}

// newFilter returns the filter selected on the command line for words
func (g GlobalConfiguration) newFilter(words []string) wordle.Filter {
	if g.filter == "index" {
		return gowordle.NewWordleMatcher(words, g.wordLength)
	}
	return wordle.Scan
}

func (g GlobalConfiguration) newSession() *wordle.Session {
	return wordle.NewSession(g.dictionary,
		wordle.WithWordLength(g.wordLength),
		wordle.WithFilter(g.newFilter(g.dictionary)),
		wordle.WithLogger(g.logger),
	)
}

func globalConfiguration(cmd *cli.Command) (GlobalConfiguration, error) {
	level, err := zerolog.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return GlobalConfiguration{}, cli.Exit("bad log level: "+cmd.String("log-level"), 1)
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	filter := cmd.String("filter")
	if filter != "scan" && filter != "index" {
		return GlobalConfiguration{}, cli.Exit("filter must be scan or index: "+filter, 1)
	}
	wordLength := cmd.Int("length")
	if wordLength < 1 {
		return GlobalConfiguration{}, cli.Exit(fmt.Sprintf("bad word length: %d", wordLength), 1)
	}

	var words []string
	if path := cmd.String("dictionary"); path != "" {
		words, err = dictionary.LoadFile(path, dictionary.Options{WordLength: wordLength, Progress: cmd.Bool("progress")})
		if err != nil {
			return GlobalConfiguration{}, err
		}
	} else {
		words = dictionary.Default(wordLength)
	}
	if count := cmd.Int("count"); count > 0 && count < len(words) {
		words = words[:count]
	}
	logger.Debug().Int("words", len(words)).Int("length", wordLength).Str("filter", filter).Msg("dictionary loaded")

	return GlobalConfiguration{
		dictionary: words,
		wordLength: wordLength,
		filter:     filter,
		color:      cmd.Bool("color"),
		logger:     logger,
	}, nil
}

// filterWords with guess/answer pairs provided
func filterWords(globalConfig GlobalConfiguration, guessAnswers []string) error {
	s := globalConfig.newSession()
	for i := 0; i < len(guessAnswers); i += 2 {
		turn, err := wordle.ParseTurn(guessAnswers[i], guessAnswers[i+1])
		if err == nil {
			err = s.ApplyTurn(turn)
		}
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}
	fmt.Print(s.LastGuess(), ":")
	for _, word := range s.Candidates() {
		fmt.Print(" ", word)
	}
	fmt.Println()
	return nil
}

// simulate scores each guess against the solution and shows what is left after every turn
func simulate(globalConfig GlobalConfiguration, solution string, guesses []string) error {
	if len([]rune(solution)) != globalConfig.wordLength {
		return cli.Exit("solution must have the word length: "+solution, 1)
	}
	s := globalConfig.newSession()
	for _, guess := range guesses {
		guess = strings.ToLower(guess)
		if len([]rune(guess)) != globalConfig.wordLength {
			return cli.Exit("guess must have the word length: "+guess, 1)
		}
		turn := wordle.Score(solution, guess)
		if err := s.ApplyTurn(turn); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		candidates := s.Candidates()
		fmt.Println(guess, turn.Colors(), len(candidates), strings.Join(candidates, " "))
		if turn.Solved() {
			s.MarkSolved()
		}
		if s.IsTerminated() {
			break
		}
	}
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	_ = godotenv.Load()

	profile := false
	var globalConfig GlobalConfiguration
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "narrow a word list with wordle feedback",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dictionary",
				Aliases: []string{"d"},
				Usage:   "word list file, one word per line, default is the embedded list",
				Sources: cli.EnvVars("WDL_DICTIONARY"),
			},
			&cli.IntFlag{
				Name:    "length",
				Value:   wordle.DefaultWordLength,
				Aliases: []string{"l"},
				Usage:   "letters per word",
				Sources: cli.EnvVars("WDL_WORD_LENGTH"),
			},
			&cli.IntFlag{
				Name:    "count",
				Value:   0,
				Aliases: []string{"c"},
				Usage:   "number of words, 0 is all words",
			},
			&cli.StringFlag{
				Name:    "filter",
				Value:   "index",
				Usage:   "candidate filter: scan or index",
				Sources: cli.EnvVars("WDL_FILTER"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "trace, debug, info, warn, error",
				Sources: cli.EnvVars("WDL_LOG_LEVEL", "LOG_LEVEL"),
			},
			&cli.BoolFlag{
				Name:    "progress",
				Value:   false,
				Aliases: []string{"p"},
				Usage:   "show progress bar while loading the dictionary",
			},
			&cli.BoolFlag{
				Name:    "color",
				Value:   true,
				Usage:   "color the guesses",
				Sources: cli.EnvVars("WDL_COLOR"),
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			var err error
			globalConfig, err = globalConfiguration(cmd)
			return ctx, err
		},
		Commands: []*cli.Command{
			{
				Name:  "play",
				Usage: "enter each guess and its colors and see the words that are left",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					return console.Run(os.Stdin, os.Stdout, globalConfig.newSession(), console.Options{Color: globalConfig.color})
				},
			},
			{
				Name: "filter",
				Usage: `filter [guess answer]...
				print the words left after the guess answer pairs, answer is r,y,g like rrggy
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess answer", 2)
					}
					return filterWords(globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "sim",
				Usage: `sim --solution word guess...
				score each guess against the solution and print the words left after each turn
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "solution",
						Aliases:  []string{"s"},
						Usage:    "the word to find",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg() < 1 {
						return cli.Exit("must have at least one guess", 2)
					}
					return simulate(globalConfig, strings.ToLower(cmd.String("solution")), cmd.Args().Slice())
				},
			},
			{
				Name:  "serve",
				Usage: "serve game sessions over http",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Value:   ":5175",
						Usage:   "listen address",
						Sources: cli.EnvVars("WDL_ADDR"),
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
					defer stop()
					srv := httpapi.New(httpapi.Config{
						Dictionary: globalConfig.dictionary,
						WordLength: globalConfig.wordLength,
						NewFilter:  globalConfig.newFilter,
						Logger:     globalConfig.logger,
					})
					addr := cmd.String("addr")
					globalConfig.logger.Info().Str("addr", addr).Int("words", len(globalConfig.dictionary)).Msg("starting server")
					return srv.ListenAndServe(ctx, addr)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
