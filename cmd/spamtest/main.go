package main

import (
	"database/sql"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	classifier "github.com/samuel/go-nbclassifier"
	"github.com/samuel/go-nbclassifier/corpus"
	"github.com/samuel/go-nbclassifier/evaluation"
	"github.com/samuel/go-nbclassifier/internal/config"
	"github.com/samuel/go-nbclassifier/internal/logger"
)

func newTokenizer(cfg config.TokenizerConfig) (classifier.Tokenizer, func(), error) {
	switch cfg.Kind {
	case "simple":
		return classifier.SimpleTokenizer, func() {}, nil
	case "stem":
		t, err := classifier.NewStemmingTokenizer(cfg.Language)
		if err != nil {
			return nil, nil, err
		}
		return t, t.Close, nil
	default:
		t, err := classifier.NewSegmentTokenizer(cfg.Dictionary...)
		if err != nil {
			return nil, nil, err
		}
		return t, func() {}, nil
	}
}

// openStore returns the configured corpus store, importing the corpus
// directory when the store is empty.
func openStore(cfg config.CorpusConfig, log *logger.Logger) (corpus.Store, func(), error) {
	store := corpus.NewLocalStore()
	closer := func() {}
	if cfg.Store.Driver != "" {
		db, err := sql.Open(cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return nil, nil, err
		}
		closer = func() { db.Close() }
		if err := corpus.CreateTables(db); err != nil {
			closer()
			return nil, nil, err
		}
		if store, err = corpus.NewSQLStore(db); err != nil {
			closer()
			return nil, nil, err
		}
	}

	counts, err := store.Counts()
	if err != nil {
		closer()
		return nil, nil, err
	}
	if counts[classifier.Spam]+counts[classifier.Ham] > 0 {
		log.Info("using %d spam and %d ham documents from %s store", counts[classifier.Spam], counts[classifier.Ham], cfg.Store.Driver)
		return store, closer, nil
	}
	n, err := corpus.Import(store, corpus.Layout{
		Dir:      cfg.Dir,
		SpamDir:  cfg.SpamDir,
		HamDir:   cfg.HamDir,
		Count:    cfg.Count,
		Encoding: cfg.Encoding,
	})
	if err != nil {
		closer()
		return nil, nil, err
	}
	log.Info("imported %d documents from %s", n, cfg.Dir)
	return store, closer, nil
}

// classifyFiles trains on the whole corpus and prints a label for each file.
func classifyFiles(docs []classifier.Document, mode classifier.Mode, tok classifier.Tokenizer, encoding string, paths []string, log *logger.Logger) error {
	c, err := classifier.Fit(docs, mode)
	if err != nil {
		return err
	}
	enc, err := corpus.Encoding(encoding)
	if err != nil {
		return err
	}
	for _, path := range paths {
		text, err := corpus.ReadFile(path, enc)
		if err != nil {
			return err
		}
		tokens, err := tok.Tokenize(text)
		if err != nil {
			return err
		}
		log.Debug("%s: %d of %d tokens not in vocabulary", path, c.Vocabulary().Unknown(tokens), len(tokens))
		label, err := c.Predict(tokens)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n", path, label)
	}
	return nil
}

func run(configPath string, paths []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Logging.Level, os.Stderr)

	mode, err := classifier.ParseMode(cfg.Evaluation.Mode)
	if err != nil {
		return err
	}
	reporter, err := evaluation.NewReporter(cfg.Report.Format, os.Stdout)
	if err != nil {
		return err
	}
	tok, closeTokenizer, err := newTokenizer(cfg.Tokenizer)
	if err != nil {
		return err
	}
	defer closeTokenizer()

	store, closeStore, err := openStore(cfg.Corpus, log)
	if err != nil {
		return err
	}
	defer closeStore()

	raw, err := store.Documents()
	if err != nil {
		return err
	}
	docs, err := corpus.Tokenize(raw, tok)
	if err != nil {
		return err
	}

	if len(paths) > 0 {
		return classifyFiles(docs, mode, tok, cfg.Corpus.Encoding, paths, log)
	}

	seed := cfg.Evaluation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("seed %d", seed)
	results, mean, err := evaluation.Repeat(docs, cfg.Evaluation.Runs, evaluation.Options{
		HoldOut: cfg.Evaluation.HoldOut,
		Mode:    mode,
		Rand:    rand.New(rand.NewSource(seed)),
		Logger:  log,
	})
	if err != nil {
		return err
	}
	for _, res := range results {
		if err := reporter.Report(res); err != nil {
			return err
		}
	}
	if len(results) > 1 {
		log.Info("mean error rate over %d runs: %.2f%%", len(results), mean)
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file] [file ...]\n\n"+
			"Without files, evaluates the classifier on a random held-out split of the corpus.\n"+
			"With files, trains on the whole corpus and classifies each file.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*configPath, flag.Args()); err != nil {
		logger.Default().Error("%v", err)
		os.Exit(1)
	}
}
