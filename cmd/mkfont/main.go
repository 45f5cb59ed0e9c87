// mkfont compiles a glyph-art text file into the packed Go table used
// by the bitmap font package.
//
// The input lists glyphs in ascending code order, each as a "glyph 0xNN"
// header followed by 8 rows of 6 characters ('#' = set pixel, '.' =
// clear). The output is a data.go with one byte per row, bit 5 holding
// the leftmost pixel.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	glyphWidth  = 6
	glyphHeight = 8
	firstCode   = 0x20
	lastCode    = 0x7e
)

func main() {
	var (
		inPath  = flag.String("in", "", "Input glyph art file.")
		outPath = flag.String("out", "", "Output Go file.")
		pkg     = flag.String("pkg", "term6x8", "Package name for the generated file.")
	)
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		fatalf("usage: mkfont -in glyphs.txt -out data.go [-pkg term6x8]")
	}

	glyphs, err := parseGlyphs(*inPath)
	if err != nil {
		fatalf("parse: %v", err)
	}
	if err := writeTable(*outPath, *pkg, *inPath, glyphs); err != nil {
		fatalf("write: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

type glyph struct {
	code int
	rows [glyphHeight]byte
}

func parseGlyphs(path string) ([]glyph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var glyphs []glyph
	sc := bufio.NewScanner(f)
	lineNo := 0

	next := func() (string, bool) {
		for sc.Scan() {
			lineNo++
			line := sc.Text()
			if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
				continue
			}
			return line, true
		}
		return "", false
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "glyph ") {
			return nil, fmt.Errorf("line %d: expected glyph header, got %q", lineNo, line)
		}
		code, err := strconv.ParseUint(strings.TrimPrefix(line, "glyph "), 0, 8)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad glyph code: %v", lineNo, err)
		}

		g := glyph{code: int(code)}
		for row := 0; row < glyphHeight; row++ {
			art, ok := next()
			if !ok {
				return nil, fmt.Errorf("glyph 0x%02X: truncated at row %d", code, row)
			}
			if len(art) != glyphWidth {
				return nil, fmt.Errorf("line %d: row must be %d chars, got %d", lineNo, glyphWidth, len(art))
			}
			var b byte
			for col, ch := range art {
				switch ch {
				case '#':
					b |= 0x20 >> col
				case '.':
				default:
					return nil, fmt.Errorf("line %d: bad cell %q", lineNo, ch)
				}
			}
			g.rows[row] = b
		}
		glyphs = append(glyphs, g)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if len(glyphs) != lastCode-firstCode+1 {
		return nil, fmt.Errorf("got %d glyphs, want %d (0x%02X..0x%02X)", len(glyphs), lastCode-firstCode+1, firstCode, lastCode)
	}
	for i, g := range glyphs {
		if g.code != firstCode+i {
			return nil, fmt.Errorf("glyph 0x%02X out of order (slot %d)", g.code, i)
		}
	}
	return glyphs, nil
}

func writeTable(path, pkg, src string, glyphs []glyph) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// Code generated by mkfont from %s. DO NOT EDIT.\n\n", src)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("// glyphData holds 8 row bytes per glyph, ASCII 0x20..0x7E in order.\n")
	b.WriteString("// Bits are stored as 0b00xxxxxx (bit 5 = leftmost pixel).\n")
	b.WriteString("var glyphData = [...]byte{\n")
	for _, g := range glyphs {
		label := string(rune(g.code))
		if g.code == ' ' {
			label = "space"
		}
		fmt.Fprintf(&b, "\t// 0x%02X %s\n\t", g.code, label)
		for i, row := range g.rows {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "0x%02X", row)
		}
		b.WriteString(",\n")
	}
	b.WriteString("}\n")

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
