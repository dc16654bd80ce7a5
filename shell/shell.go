package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/wordjumble/jumble/anagram"
	"github.com/wordjumble/jumble/cache"
	"github.com/wordjumble/jumble/config"
	"github.com/wordjumble/jumble/lexicon"
	"github.com/wordjumble/jumble/pattern"
	"github.com/wordjumble/jumble/puzzles"
)

var errShellQuit = errors.New("sending quit signal")

type ShellController struct {
	l   *readline.Instance
	cfg config.Config

	// tokens is the loaded word list with only the alphabetic filter
	// applied; length rules are applied per operation so that changing
	// them never requires re-reading the file.
	tokens []string
	index  anagram.Index
	gen    *puzzles.Generator
	allow  []int
	deny   []int
	rng    puzzles.RandSource
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mjumble>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:     l,
		cfg:   cfg,
		allow: cfg.GetIntSlice("allow-lengths"),
		deny:  cfg.GetIntSlice("deny-lengths"),
		rng:   puzzles.DefaultRand(),
	}
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	msg := "Error: " + err.Error()
	if errors.Is(err, puzzles.ErrNoEligibleWords) {
		msg += " (try relaxing the length filters)"
	}
	sc.showMessage(msg)
}

func (sc *ShellController) lengthFilter() lexicon.LengthFilter {
	return lexicon.MakeLengthFilter(sc.allow, sc.deny)
}

// loadWordList reads and caches the word list at path, then builds the
// current index and generator views over it.
func (sc *ShellController) loadWordList(path string) error {
	obj, err := cache.Load("wordlist:"+path, func(key string) (interface{}, error) {
		return lexicon.LoadFile(path, lexicon.LengthFilter{})
	})
	if err != nil {
		return err
	}
	sc.tokens = obj.([]string)
	sc.cfg.Set("wordlist-path", path)
	return sc.rebuild()
}

// rebuild recomputes the anagram index and puzzle generator for the current
// word list and length rules. Both are cached; the cache key carries the
// length rules so a filter change is a different object.
func (sc *ShellController) rebuild() error {
	if sc.tokens == nil {
		return errors.New("no word list loaded; use the `load` command")
	}
	path := sc.cfg.GetString("wordlist-path")
	key := fmt.Sprintf("index:%s:allow=%v:deny=%v", path, sc.allow, sc.deny)
	obj, err := cache.Load(key, func(key string) (interface{}, error) {
		return anagram.NewIndex(sc.tokens, sc.lengthFilter()), nil
	})
	if err != nil {
		return err
	}
	sc.index = obj.(anagram.Index)
	sc.gen = puzzles.NewGenerator(sc.index, sc.rng)
	log.Debug().Int("classes", len(sc.index)).Int("pool", len(sc.gen.Pool())).
		Msg("rebuilt index")
	return nil
}

func (sc *ShellController) create(count int) (string, error) {
	if sc.gen == nil {
		return "", errors.New("no word list loaded; use the `load` command")
	}
	entries, err := sc.gen.Generate(count)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&sb, "%3d: %-20s(%s)\n", i+1, e.Scrambled, e.Answer)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func (sc *ShellController) solve(word string) (string, error) {
	if sc.tokens == nil {
		return "", errors.New("no word list loaded; use the `load` command")
	}
	found, err := anagram.Solve(word, sc.tokens, sc.lengthFilter())
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "no matches", nil
	}
	return strings.Join(found, " "), nil
}

func (sc *ShellController) crossword(pat string) (string, error) {
	if sc.tokens == nil {
		return "", errors.New("no word list loaded; use the `load` command")
	}
	found, err := pattern.Solve(pat, sc.tokens)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "no matches", nil
	}
	return strings.Join(found, " "), nil
}

func (sc *ShellController) lengths(fields []string) (string, error) {
	if len(fields) == 0 {
		return fmt.Sprintf("allow: %v deny: %v", sc.allow, sc.deny), nil
	}
	switch fields[0] {
	case "clear":
		sc.allow, sc.deny = nil, nil
	case "allow", "deny":
		if len(fields) < 2 {
			return "", fmt.Errorf("`lengths %s` needs a comma-separated list", fields[0])
		}
		lengths, err := config.ParseLengths(strings.Join(fields[1:], ","))
		if err != nil {
			return "", err
		}
		if fields[0] == "allow" {
			sc.allow = lengths
		} else {
			sc.deny = lengths
		}
	default:
		return "", errors.New("unrecognized arguments to `lengths`")
	}
	if sc.tokens != nil {
		if err := sc.rebuild(); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("allow: %v deny: %v", sc.allow, sc.deny), nil
}

func (sc *ShellController) pool() (string, error) {
	if sc.gen == nil {
		return "", errors.New("no word list loaded; use the `load` command")
	}
	words := sc.gen.Pool()
	if len(words) == 0 {
		return "", puzzles.ErrNoEligibleWords
	}
	const sample = 20
	shown := words
	suffix := ""
	if len(shown) > sample {
		shown = shown[:sample]
		suffix = " ..."
	}
	return fmt.Sprintf("%d eligible words: %s%s", len(words),
		strings.Join(shown, " "), suffix), nil
}

func (sc *ShellController) execute(line string, sig chan os.Signal) (string, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return "", err
	}
	if len(fields) == 0 {
		return "", nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "load":
		path := sc.cfg.GetString("wordlist-path")
		if len(args) > 0 {
			path = args[0]
		}
		if err := sc.loadWordList(path); err != nil {
			return "", err
		}
		return fmt.Sprintf("loaded %d words from %s", len(sc.tokens), path), nil

	case "create":
		count := sc.cfg.GetInt("word-count")
		if len(args) > 0 {
			count, err = strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("bad word count %q", args[0])
			}
		}
		return sc.create(count)

	case "solve":
		if len(args) != 1 {
			return "", errors.New("`solve` takes exactly one scrambled word")
		}
		return sc.solve(args[0])

	case "crossword":
		if len(args) != 1 {
			return "", errors.New("`crossword` takes exactly one pattern, e.g. c?m?l")
		}
		return sc.crossword(args[0])

	case "lengths":
		return sc.lengths(args)

	case "pool":
		return sc.pool()

	case "help":
		return usage(), nil

	case "exit", "bye":
		if sig != nil {
			sig <- syscall.SIGINT
		}
		return "", errShellQuit

	default:
		return "", fmt.Errorf("unrecognized command %q; try `help`", cmd)
	}
}

// Execute runs a single command line, for non-interactive invocations.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	out, err := sc.execute(strings.TrimSpace(line), sig)
	if err != nil && !errors.Is(err, errShellQuit) {
		sc.showError(err)
		return
	}
	if out != "" {
		sc.showMessage(out)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}

		out, err := sc.execute(strings.TrimSpace(line), sig)
		if errors.Is(err, errShellQuit) {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if out != "" {
			sc.showMessage(out)
		}
	}
	log.Debug().Msg("exiting readline loop...")
}
