// Package fonts loads the TrueType fonts used to rasterize chart text.
//
// The Go font family (regular and bold) is compiled into the binary and is
// always available, so rendering is identical on every host. A deployment
// can ask for system fonts by name instead (for example "Arial"); those are
// located with go-findfont and fall back to the embedded fonts when missing.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded font names, reported by [Set] when no system font was used.
const (
	EmbeddedRegular = "Go Regular"
	EmbeddedBold    = "Go Bold"
)

// Options selects system fonts by name. Empty names use the embedded fonts.
type Options struct {
	Regular string
	Bold    string
}

// Set is a parsed regular/bold font pair. Fonts are immutable and safe to
// share; faces are not, so every render takes its own via [Set.Face].
type Set struct {
	Regular     *truetype.Font
	Bold        *truetype.Font
	RegularName string
	BoldName    string
}

// Parsed embedded fonts (computed once on first access).
var (
	embeddedOnce    sync.Once
	embeddedRegular *truetype.Font
	embeddedBold    *truetype.Font
	embeddedErr     error
)

func embedded() (*truetype.Font, *truetype.Font, error) {
	embeddedOnce.Do(func() {
		embeddedRegular, embeddedErr = truetype.Parse(goregular.TTF)
		if embeddedErr != nil {
			return
		}
		embeddedBold, embeddedErr = truetype.Parse(gobold.TTF)
	})
	return embeddedRegular, embeddedBold, embeddedErr
}

// Default returns the embedded font set.
func Default() (*Set, error) {
	return Load(Options{})
}

// Load resolves the requested fonts. A named font that cannot be found or
// parsed is replaced by its embedded counterpart; the returned Set records
// which font was actually used. Only a failure of the embedded fonts is an
// error.
func Load(opts Options) (*Set, error) {
	reg, bold, err := embedded()
	if err != nil {
		return nil, fmt.Errorf("parse embedded fonts: %w", err)
	}

	s := &Set{Regular: reg, Bold: bold, RegularName: EmbeddedRegular, BoldName: EmbeddedBold}
	if f, err := find(opts.Regular); err == nil && f != nil {
		s.Regular, s.RegularName = f, opts.Regular
	}
	if f, err := find(opts.Bold); err == nil && f != nil {
		s.Bold, s.BoldName = f, opts.Bold
	}
	return s, nil
}

func find(name string) (*truetype.Font, error) {
	if name == "" {
		return nil, nil
	}
	path, err := findfont.Find(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(data)
}

// Face returns a new face of the given pixel size. Faces cache glyphs and
// must not be shared between goroutines.
func (s *Set) Face(bold bool, size float64) font.Face {
	f := s.Regular
	if bold {
		f = s.Bold
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingNone})
}
