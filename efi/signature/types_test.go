package signature

import (
	"bytes"
	"testing"

	"github.com/foxboron/go-execinfo/efi/util"
)

func TestResolveSignatureType(t *testing.T) {
	for _, c := range []struct {
		guid util.EFIGUID
		want SignatureType
		name string
	}{
		{CERT_SHA256_GUID, SHA256, "SHA-256 Hash"},
		{CERT_SHA1_GUID, SHA1, "SHA-1 Hash"},
		{CERT_SHA224_GUID, SHA224, "SHA-224 Hash"},
		{CERT_SHA384_GUID, SHA384, "SHA-384 Hash"},
		{CERT_SHA512_GUID, SHA512, "SHA-512 Hash"},
		{CERT_RSA2048_GUID, RSA2048, "RSA-2048 Public Key"},
		{CERT_RSA2048_SHA1_GUID, RSA2048SHA1, "RSA-2048 Signature of a SHA-1 Hash"},
		{CERT_RSA2048_SHA256_GUID, RSA2048SHA256, "RSA-2048 Signature of a SHA-256 Hash"},
		{CERT_X509_GUID, X509, "X.509 Certificate"},
		{CERT_X509_SHA256_GUID, X509SHA256, "SHA-256 Hash of X.509 To-Be-Signed Contents"},
		{CERT_X509_SHA384_GUID, X509SHA384, "SHA-384 Hash of X.509 To-Be-Signed Contents"},
		{CERT_X509_SHA512_GUID, X509SHA512, "SHA-512 Hash of X.509 To-Be-Signed Contents"},
		{CERT_EXTERNAL_MANAGEMENT_GUID, ExternalManagement, "Externally Managed"},
		{util.EFIGUID{}, Unsupported, "Unsupported"},
		{util.MustGUID("d719b2cb-3d3a-4596-a3bc-dad00e67656f"), Unsupported, "Unsupported"},
	} {
		got := ResolveSignatureType(c.guid)
		if got != c.want {
			t.Errorf("%s: got %v, expected %v", c.guid, got, c.want)
		}
		if got.String() != c.name {
			t.Errorf("%s: label %q, expected %q", c.guid, got.String(), c.name)
		}
		if c.want != Unsupported && got.GUID() != c.guid {
			t.Errorf("%s: GUID() returned %s", c.name, got.GUID())
		}
	}
}

func TestPayloadKind(t *testing.T) {
	for typ, want := range map[SignatureType]PayloadKind{
		SHA1:               PayloadHash,
		SHA512:             PayloadHash,
		RSA2048:            PayloadRSA2048,
		RSA2048SHA256:      PayloadRSA2048Signature,
		X509:               PayloadX509,
		X509SHA384:         PayloadX509TBSHash,
		ExternalManagement: PayloadExternal,
		Unsupported:        PayloadOpaque,
	} {
		if got := typ.Payload(); got != want {
			t.Errorf("%v: got %v, expected %v", typ, got, want)
		}
	}
}

func TestSplitTBSHash(t *testing.T) {
	digest := bytes.Repeat([]byte{0x42}, 32)
	ts := []byte{0xe5, 0x07, 6, 15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	hash, tm, err := SplitTBSHash(append(append([]byte{}, digest...), ts...))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(hash, digest) {
		t.Fatalf("unexpected digest %x", hash)
	}
	if tm.Year != 2021 || tm.Month != 6 || tm.Day != 15 {
		t.Fatalf("unexpected time %+v", tm)
	}
	if _, _, err := SplitTBSHash(ts[:10]); err == nil {
		t.Fatal("expected error for a short payload")
	}
}
