package signature

import (
	"bytes"
	"encoding/binary"
	"encoding/pem"
	"errors"
	"io"
	"iter"

	"github.com/foxboron/go-execinfo/efi/util"
)

// Section 32.4.1 - Signature Database
// Page 1712
type SignatureData struct {
	Owner util.EFIGUID
	Data  []uint8
}

func WriteSignatureData(b io.Writer, s SignatureData) error {
	if _, err := b.Write(s.Owner.Bytes()); err != nil {
		return err
	}
	_, err := b.Write(s.Data)
	return err
}

// Section 32.4.1 - Signature Database
// Page 1713
type SignatureList struct {
	SignatureType   util.EFIGUID
	ListSize        uint32          // Total size of the signature list, including this header
	HeaderSize      uint32          // Size of SignatureHead
	Size            uint32          // Size of each signature. At least the size of EFI_SIGNATURE_DATA
	SignatureHeader []uint8         // SignatureType defines the content of this header
	Signatures      []SignatureData // SignatureData List, only set when building a list

	// Set when the list was decoded from a buffer
	Type      SignatureType
	Offset    uint64 // Offset of the list in the walked region
	Malformed error  // nil for a well formed list
	data      []byte // Signature data run, clipped to a multiple of Size
}

// SignatureSize + sizeof(SignatureType) + sizeof(uint32)*3
const SizeofSignatureList uint32 = util.SizeofEFIGUID + 4 + 4 + 4

var (
	ErrSigDataExists = errors.New("signature data exists already")

	// ErrInvalidSignatureSize is set on a list whose signature size cannot
	// hold an owner GUID. None of its entries are decoded.
	ErrInvalidSignatureSize = errors.New("signature size smaller than signature owner")
	// ErrInconsistentListSize is set on a list whose header does not fit
	// inside the declared list size.
	ErrInconsistentListSize = errors.New("signature header exceeds signature list size")
	// ErrTrailingSignatureData is set when the signature data run is not a
	// multiple of the signature size. The partial entry is dropped.
	ErrTrailingSignatureData = errors.New("signature data is not a multiple of the signature size")
)

func NewSignatureList(certtype util.EFIGUID) *SignatureList {
	return &SignatureList{
		SignatureType:   certtype,
		ListSize:        SizeofSignatureList,
		HeaderSize:      0,
		Size:            0,
		SignatureHeader: []uint8{},
		Signatures:      []SignatureData{},
		Type:            ResolveSignatureType(certtype),
	}
}

// Check if signature exists in the signature list
// Return true if it does along with the index
func (sl *SignatureList) Exists(sigdata *SignatureData) (bool, int) {
	for index, sigs := range sl.Signatures {
		if !util.CmpEFIGUID(sigs.Owner, sigdata.Owner) {
			continue
		}
		if !bytes.Equal(sigs.Data, sigdata.Data) {
			continue
		}
		return true, index
	}
	return false, 0
}

func (sl *SignatureList) AppendBytes(owner util.EFIGUID, data []byte) error {
	if ok, _ := sl.Exists(&SignatureData{owner, data}); ok {
		return ErrSigDataExists
	}
	if ResolveSignatureType(sl.SignatureType) == X509 {
		// Check if the cert is PEM encoded
		// We need the DER encoded cert, but this makes it nicer
		// for us in the API
		if block, _ := pem.Decode(data); block != nil {
			data = block.Bytes
		}
	}
	sl.Signatures = append(sl.Signatures, SignatureData{Owner: owner, Data: data})
	sl.Size = uint32(len(data)) + util.SizeofEFIGUID
	sl.ListSize += sl.Size
	return nil
}

func (sl *SignatureList) Bytes() []byte {
	buf := new(bytes.Buffer)
	// bytes.Buffer writes do not fail
	_ = WriteSignatureList(buf, *sl)
	return buf.Bytes()
}

// Writes a signature list
func WriteSignatureList(b io.Writer, s SignatureList) error {
	if _, err := b.Write(s.SignatureType.Bytes()); err != nil {
		return err
	}
	for _, v := range []uint32{s.ListSize, s.HeaderSize, s.Size} {
		if err := binary.Write(b, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	if _, err := b.Write(s.SignatureHeader); err != nil {
		return err
	}
	for _, l := range s.Signatures {
		if err := WriteSignatureData(b, l); err != nil {
			return err
		}
	}
	return nil
}

// Len is the number of complete signature data entries in a decoded list.
func (sl *SignatureList) Len() int {
	if sl.Size == 0 {
		return 0
	}
	return len(sl.data) / int(sl.Size)
}

// Entries walks the signature data run of a decoded list. Every entry is a
// view into the decoded buffer: the owner GUID followed by Size-16 bytes of
// payload.
func (sl *SignatureList) Entries() iter.Seq2[int, SignatureData] {
	return func(yield func(int, SignatureData) bool) {
		c := util.NewCursor(sl.data)
		for i := 0; c.Len() > 0; i++ {
			owner, err := c.GUID()
			if err != nil {
				return
			}
			data, err := c.Read(uint64(sl.Size - util.SizeofEFIGUID))
			if err != nil {
				return
			}
			if !yield(i, SignatureData{Owner: owner, Data: data}) {
				return
			}
		}
	}
}
