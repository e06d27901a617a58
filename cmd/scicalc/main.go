package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	scicalc "github.com/talhatariq2141/othercalculators-sub001"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname, modename string
		digits, prec              int
		keys, echo                bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&cfgname, "config", "", "YAML configuration file")
	flag.StringVar(&modename, "mode", "deg", "angle mode, deg or rad")
	flag.IntVar(&digits, "digits", scicalc.DefaultDigits, "significant digits in results")
	flag.IntVar(&prec, "p", 64, "precision of calculations in bits")
	flag.BoolVar(&keys, "keys", false, "read key labels instead of expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	var km keymap
	if cfgname != "" {
		cfg, err := loadConfig(cfgname)
		if err != nil {
			log.Fatal(err)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if cfg.Mode != "" && !set["mode"] {
			modename = cfg.Mode
		}
		if cfg.Digits != 0 && !set["digits"] {
			digits = cfg.Digits
		}
		if cfg.Prec != 0 && !set["p"] {
			prec = int(cfg.Prec)
		}
		if km, err = cfg.keymap(); err != nil {
			log.Fatal(err)
		}
	}
	mode, err := scicalc.ParseMode(modename)
	if err != nil {
		log.Fatal(err)
	}
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}

	var in io.Reader
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	case inname == "-", flag.NArg() == 0:
		in = os.Stdin
	}

	if keys {
		c := scicalc.New(scicalc.WithMode(mode), scicalc.WithDigits(digits), scicalc.WithPrec(uint(prec)))
		lines := flag.Args()
		if in != nil {
			lines = append(readLines(in), lines...)
		}
		for _, line := range lines {
			ks, err := km.keys(line)
			if err != nil {
				log.Print(err)
				continue
			}
			for _, k := range ks {
				c = c.Press(k)
			}
			if c.State() == scicalc.Error {
				log.Print(c.Err())
			}
			disp := c.Display()
			if disp == "" {
				disp = "0"
			}
			fmt.Printf("[%v] %s\n", c.Mode(), disp)
		}
		return
	}

	srcs := flag.Args()
	if in != nil {
		srcs = append(readLines(in), srcs...)
	}
	ctx := scicalc.NewContext(scicalc.Angle(mode), scicalc.Prec(uint(prec)))
	for _, src := range srcs {
		if strings.TrimSpace(src) == "" {
			continue
		}
		a, err := scicalc.ParseString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := ctx.Eval(a)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(scicalc.FormatResult(r, digits))
	}
}

func readLines(r io.Reader) []string {
	var lines []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
	return lines
}
