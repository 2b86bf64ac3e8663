package bytecode

import (
	"bytes"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// ImageVersion is the current program image format version.
// Increment when making incompatible changes to the format.
const ImageVersion uint16 = 1

// ImageMagic prefixes program image files: "CZPU".
var ImageMagic = []byte{'C', 'Z', 'P', 'U'}

// Image is the on-disk container for an assembled program:
// a magic prefix followed by a canonically CBOR-encoded body.
type Image struct {
	Version uint16 `cbor:"version"`
	Name    string `cbor:"name,omitempty"`
	Code    []byte `cbor:"code"`
}

// cborEncMode uses canonical mode so the same program always encodes to
// the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("bytecode: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// NewImage wraps a program in an image with the current format version.
func NewImage(name string, p *Program) *Image {
	return &Image{
		Version: ImageVersion,
		Name:    name,
		Code:    p.Code,
	}
}

// Program returns the program contained in the image.
func (img *Image) Program() *Program {
	return ProgramFromBytes(img.Code)
}

// MarshalImage serializes an image to bytes.
func MarshalImage(img *Image) ([]byte, error) {
	body, err := cborEncMode.Marshal(img)
	if err != nil {
		return nil, fmt.Errorf("bytecode: marshal image: %w", err)
	}
	return append(append([]byte{}, ImageMagic...), body...), nil
}

// UnmarshalImage deserializes an image from bytes.
func UnmarshalImage(data []byte) (*Image, error) {
	if len(data) < len(ImageMagic) || !bytes.Equal(data[:len(ImageMagic)], ImageMagic) {
		return nil, fmt.Errorf("bytecode: invalid image magic: expected %q", ImageMagic)
	}

	var img Image
	if err := cbor.Unmarshal(data[len(ImageMagic):], &img); err != nil {
		return nil, fmt.Errorf("bytecode: unmarshal image: %w", err)
	}
	if img.Version > ImageVersion {
		return nil, fmt.Errorf("bytecode: image version %d is newer than supported version %d",
			img.Version, ImageVersion)
	}
	return &img, nil
}

// WriteImage writes an image to a file.
func WriteImage(path string, img *Image) error {
	data, err := MarshalImage(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadImage reads an image from a file.
func ReadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bytecode: cannot read %s: %w", path, err)
	}
	img, err := UnmarshalImage(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
