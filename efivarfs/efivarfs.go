// Package efivarfs reads EFI variables from an efivarfs mount. It never
// writes.
package efivarfs

import (
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/foxboron/go-execinfo/efi/attributes"
	"github.com/foxboron/go-execinfo/efivar"
)

var (
	ErrIncorrectAttributes = errors.New("efivar has the wrong attributes")
	ErrNotFound            = errors.New("efivar not found")
)

// This is the high-level abstraction of efivarfs. It gives you the easy
// variable access and auxillary functions you should expect from a library like
// this.
type Efivarfs struct {
	fs   afero.Fs
	root string
}

// NewFS reads from the efivarfs mount of the running system.
func NewFS() *Efivarfs {
	return Open(afero.NewOsFs(), attributes.Efivars)
}

// Open reads variables below root on fs.
func Open(fs afero.Fs, root string) *Efivarfs {
	return &Efivarfs{fs: fs, root: root}
}

// GetVarWithAttributes returns the attributes and data of a variable. Data
// is returned together with ErrIncorrectAttributes when the attributes differ
// from the definition.
func (e *Efivarfs) GetVarWithAttributes(v efivar.Efivar) (attributes.Attributes, []byte, error) {
	p := path.Join(e.root, v.Filename())
	b, err := afero.ReadFile(e.fs, p)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return 0, nil, errors.Wrapf(ErrNotFound, "%s", v.Name)
	case err != nil:
		return 0, nil, errors.Wrapf(err, "could not read %s", p)
	}
	attrs, data, err := attributes.ParseEfivars(b)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "could not parse %s", p)
	}
	if !v.Attributes.Equal(attrs) {
		return attrs, data, ErrIncorrectAttributes
	}
	return attrs, data, nil
}

func (e *Efivarfs) GetSecureBoot() (bool, error) {
	_, data, err := e.GetVarWithAttributes(efivar.SecureBoot)
	if err != nil && !errors.Is(err, ErrIncorrectAttributes) {
		return false, err
	}
	return len(data) > 0 && data[0] == 1, nil
}

// GetSignatureDatabase returns the EFI_SIGNATURE_LIST data of a signature
// database variable.
func (e *Efivarfs) GetSignatureDatabase(v efivar.Efivar) ([]byte, error) {
	_, data, err := e.GetVarWithAttributes(v)
	return data, err
}
