package signature

import (
	"bytes"
	"io"

	"github.com/foxboron/go-execinfo/efi/util"
)

// SignatureDatabase is a list of EFI signature lists
type SignatureDatabase []*SignatureList

// Appends the raw signature values to the database
func (sd *SignatureDatabase) Append(certtype util.EFIGUID, owner util.EFIGUID, data []byte) error {
	for _, l := range *sd {
		if !util.CmpEFIGUID(l.SignatureType, certtype) {
			continue
		}
		size := uint32(len(data)) + util.SizeofEFIGUID
		if size != l.Size {
			continue
		}
		return l.AppendBytes(owner, data)
	}
	sl := NewSignatureList(certtype)
	if err := sl.AppendBytes(owner, data); err != nil {
		return err
	}
	*sd = append(*sd, sl)
	return nil
}

// Appends a signaure to the database. It will scan the database for the appropriate list to append
// itself to.
func (sd *SignatureDatabase) AppendSignature(certtype util.EFIGUID, sl *SignatureData) error {
	return sd.Append(certtype, sl.Owner, sl.Data)
}

// Appends a signature list to the database
func (sd *SignatureDatabase) AppendList(sl *SignatureList) {
	*sd = append(*sd, sl)
}

// Write a signature database which contains a slice of SignautureLists
func WriteSignatureDatabase(b io.Writer, sigdb SignatureDatabase) error {
	for _, l := range sigdb {
		if err := WriteSignatureList(b, *l); err != nil {
			return err
		}
	}
	return nil
}

func (sd SignatureDatabase) Bytes() []byte {
	var b bytes.Buffer
	_ = WriteSignatureDatabase(&b, sd)
	return b.Bytes()
}

// ReadSignatureDatabase decodes every signature list in b. The lists and
// their entries are views into b.
func ReadSignatureDatabase(b []byte) SignatureDatabase {
	sigdb := SignatureDatabase{}
	for sl := range WalkSignatureLists(b) {
		for _, sd := range sl.Entries() {
			sl.Signatures = append(sl.Signatures, sd)
		}
		sigdb = append(sigdb, sl)
	}
	return sigdb
}
