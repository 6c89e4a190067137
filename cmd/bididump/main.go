package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bidi"
	"github.com/npillmayer/bidi/chars"
	cli "github.com/urfave/cli"
	"golang.org/x/term"
)

func main() {
	app := cli.NewApp()
	app.Name = "bididump"
	app.Usage = "inspect embedding levels and visual reordering of bidirectional text"
	app.ArgsUsage = "[text]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "dir",
			Value: "auto",
			Usage: "base direction: ltr, rtl or auto",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "levels",
			Usage:     "dump the resolved embedding level of every position",
			ArgsUsage: "[text]",
			Action:    dumpLevels,
		},
		{
			Name:      "order",
			Usage:     "print the text in visual order, runs colored by direction",
			ArgsUsage: "[text]",
			Action:    dumpOrder,
		},
		{
			Name:      "types",
			Usage:     "dump the bidi character class of every code point",
			ArgsUsage: "[text]",
			Action:    dumpTypes,
		},
	}
	app.Action = dumpLevels

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// inputText takes the text from the command operands, or from stdin when
// none are given.
func inputText(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return strings.Join(c.Args(), " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func baseDir(c *cli.Context) bidi.Direction {
	return bidi.ParseDirection(c.GlobalString("dir"))
}

func dumpLevels(c *cli.Context) error {
	text, err := inputText(c)
	if err != nil {
		return err
	}
	levels := bidi.EmbeddingLevels(text, baseDir(c))
	for _, p := range levels.Paragraphs {
		fmt.Printf("paragraph [%d..%d] base level %d\n", p.Start, p.End, p.Level)
	}
	cu := 0
	for _, r := range text {
		fmt.Printf("%4d  %-8s %-4s level %d\n", cu, printable(r), chars.TypeName(r), levels.Levels[cu])
		cu += width(r)
	}
	return nil
}

func dumpTypes(c *cli.Context) error {
	text, err := inputText(c)
	if err != nil {
		return err
	}
	cu := 0
	for _, r := range text {
		fmt.Printf("%4d  %-8s %s\n", cu, printable(r), chars.TypeName(r))
		cu += width(r)
	}
	return nil
}

func dumpOrder(c *cli.Context) error {
	text, err := inputText(c)
	if err != nil {
		return err
	}
	levels := bidi.EmbeddingLevels(text, baseDir(c))
	visual := levels.ReorderedString(0, -1)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(visual)
		return nil
	}
	// Color runs by the direction of their source position.
	indices := levels.ReorderedIndices(0, -1)
	runes := []rune(visual)
	ltr := color.New(color.FgBlue)
	rtl := color.New(color.FgRed)
	pos := 0
	for _, r := range runes {
		paint := ltr
		if levels.Levels[indices[pos]]&1 != 0 {
			paint = rtl
		}
		paint.Print(string(r))
		pos += width(r)
	}
	fmt.Println()
	return nil
}

func printable(r rune) string {
	if r < 0x20 || (r >= 0x2028 && r <= 0x202E) || (r >= 0x2066 && r <= 0x2069) {
		return fmt.Sprintf("U+%04X", r)
	}
	return string(r)
}

func width(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
