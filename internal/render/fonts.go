package render

import (
	"errors"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/jarair9/translation-video-generator/internal/types"
)

// FontSet holds the two parsed script fonts, resolved once at startup and
// passed down read-only. The renderer derives sized faces from it per frame.
type FontSet struct {
	en, ur *truetype.Font

	ENPath string
	URPath string
}

// LoadFontSet parses both font files. A missing or unparseable file is a
// *types.FontUnavailableError naming the path; there is no fallback font.
func LoadFontSet(enPath, urPath string) (*FontSet, error) {
	en, err := parseTTF(enPath)
	if err != nil {
		return nil, &types.FontUnavailableError{Path: enPath, Err: err}
	}
	ur, err := parseTTF(urPath)
	if err != nil {
		return nil, &types.FontUnavailableError{Path: urPath, Err: err}
	}
	return &FontSet{en: en, ur: ur, ENPath: enPath, URPath: urPath}, nil
}

func parseTTF(path string) (*truetype.Font, error) {
	if path == "" {
		return nil, errors.New("no font path configured")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return truetype.Parse(b)
}

// ENFace returns an English face at the given pixel size.
func (fs *FontSet) ENFace(size float64) font.Face {
	return truetype.NewFace(fs.en, &truetype.Options{Size: size})
}

// URFace returns an Urdu face at the given pixel size.
func (fs *FontSet) URFace(size float64) font.Face {
	return truetype.NewFace(fs.ur, &truetype.Options{Size: size})
}
