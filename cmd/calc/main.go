package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, cfgname string
		echo, pad             bool
		maxin                 int
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "", "result formatting string (default shortest decimal)")
	flag.StringVar(&cfgname, "config", os.Getenv("CALC_CONFIG"), "TOML config file")
	flag.BoolVar(&echo, "echo", false, "print tokens before each result")
	flag.BoolVar(&pad, "keypad", false, "run the interactive keypad")
	flag.IntVar(&maxin, "max", 0, "keypad input length limit (default 20)")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Format = verb
		case "echo":
			cfg.Echo = echo
		case "max":
			cfg.Keypad.MaxInput = maxin
		}
	})

	if pad {
		if err := runKeypad(cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if flag.NArg() > 0 && inname == "" {
		for _, arg := range flag.Args() {
			cfg.print(out, arg)
		}
		return
	}
	f, err := infile(inname)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if f == os.Stdin && isatty.IsTerminal(f.Fd()) {
		out.Flush()
		repl(cfg, f, os.Stdout)
		return
	}
	if err := cfg.batch(out, f, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func infile(inname string) (*os.File, error) {
	if inname == "" || inname == "-" {
		return os.Stdin, nil
	}
	return os.Open(inname)
}

// batch evaluates the lines of in, then each of args. Output written before an
// error is flushed to out before the error is returned.
func (cfg *config) batch(out *bufio.Writer, in io.Reader, args []string) error {
	err := cfg.lines(out, in)
	if err == nil {
		for _, arg := range args {
			cfg.print(out, arg)
		}
	}
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// lines evaluates each non-blank line of in.
func (cfg *config) lines(out io.Writer, in io.Reader) error {
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cfg.print(out, line)
	}
	return scan.Err()
}

func repl(cfg *config, in io.Reader, out io.Writer) {
	scan := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scan.Scan() {
			fmt.Fprintln(out)
			break
		}
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		cfg.print(out, scan.Text())
	}
}

// print evaluates an expression and writes its result or error.
func (cfg *config) print(out io.Writer, src string) {
	if cfg.Echo {
		toks, err := calc.Tokenize(src)
		if err == nil {
			fmt.Fprintf(out, "%v : ", toks)
		}
	}
	r, err := calc.Calculate(src)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if cfg.Format == "" {
		fmt.Fprintln(out, calc.Format(r))
		return
	}
	fmt.Fprintf(out, cfg.Format+"\n", r)
}
