package efivarfs

import (
	"bytes"
	"errors"
	"testing"

	"github.com/foxboron/go-execinfo/efi/efitest"
	"github.com/foxboron/go-execinfo/efi/signature"
	"github.com/foxboron/go-execinfo/efi/util"
	"github.com/foxboron/go-execinfo/efivar"
)

func TestGetSecureBoot(t *testing.T) {
	for _, c := range []struct {
		name  string
		state *efitest.FSState
		want  bool
	}{
		{"on", efitest.NewFS().With(efitest.SecureBootOn()), true},
		{"off", efitest.NewFS().With(efitest.SecureBootOff()), false},
	} {
		t.Run(c.name, func(t *testing.T) {
			e := Open(c.state.ToAfero(), efitest.Efivars)
			got, err := e.GetSecureBoot()
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestGetSignatureDatabase(t *testing.T) {
	sl := signature.NewSignatureList(signature.CERT_SHA256_GUID)
	sl.AppendBytes(util.MustGUID("605dab50-e046-4300-abb6-3dd810dd8b23"), bytes.Repeat([]byte{0x77}, 32))
	fs := efitest.NewFS().With(efitest.SignatureDatabase("dbx", sl.Bytes())).ToAfero()

	data, err := Open(fs, efitest.Efivars).GetSignatureDatabase(efivar.Dbx)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, sl.Bytes()) {
		t.Fatalf("unexpected data %x", data)
	}
}

func TestGetSignatureDatabaseMissing(t *testing.T) {
	fs := efitest.NewFS().With(efitest.SecureBootOn()).ToAfero()
	_, err := Open(fs, efitest.Efivars).GetSignatureDatabase(efivar.Db)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetVarIncorrectAttributes(t *testing.T) {
	fs := efitest.NewFS().With(efitest.Variable("db", "d719b2cb-3d3a-4596-a3bc-dad00e67656f", 0x7, []byte{1, 2})).ToAfero()
	attrs, data, err := Open(fs, efitest.Efivars).GetVarWithAttributes(efivar.Db)
	if !errors.Is(err, ErrIncorrectAttributes) {
		t.Fatalf("expected ErrIncorrectAttributes, got %v", err)
	}
	if attrs != 0x7 || !bytes.Equal(data, []byte{1, 2}) {
		t.Fatalf("unexpected variable %v %x", attrs, data)
	}
}

func TestLookupSignatureDatabase(t *testing.T) {
	v, ok := efivar.LookupSignatureDatabase("DBX")
	if !ok || v.Name != "dbx" {
		t.Fatalf("unexpected lookup result %+v %v", v, ok)
	}
	if v.Filename() != "dbx-d719b2cb-3d3a-4596-a3bc-dad00e67656f" {
		t.Fatalf("unexpected filename %s", v.Filename())
	}
	if _, ok := efivar.LookupSignatureDatabase("BootOrder"); ok {
		t.Fatal("BootOrder is not a signature database")
	}
}
