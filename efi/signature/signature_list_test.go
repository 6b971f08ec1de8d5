package signature

import (
	"bytes"
	"testing"

	"github.com/foxboron/go-execinfo/efi/util"
)

var sigdata = []SignatureData{
	SignatureData{Owner: util.EFIGUID{Data1: 0xc1095e1b, Data2: 0x8a3b, Data3: 0x4cf5, Data4: [8]uint8{0x9d, 0x4a, 0xaf, 0xc7, 0xd7, 0x5d, 0xca, 0x68}}, Data: []uint8{0x81, 0xb4, 0xd9, 0x69, 0x31, 0xbf, 0xd, 0x2, 0xfd, 0x91, 0xa6, 0x1e, 0x19, 0xd1, 0x4f, 0x1d, 0xa4, 0x52, 0xe6, 0x6d, 0xb2, 0x40, 0x8c, 0xa8, 0x60, 0x4d, 0x41, 0x1f, 0x92, 0x65, 0x9f, 0xa}},
	SignatureData{Owner: util.EFIGUID{Data1: 0xc1095e1b, Data2: 0x8a3b, Data3: 0x4cf5, Data4: [8]uint8{0x9d, 0x4a, 0xaf, 0xc7, 0xd7, 0x5d, 0xca, 0x68}}, Data: []uint8{0x82, 0xb4, 0xd9, 0x69, 0x31, 0xbf, 0xd, 0x2, 0xfd, 0x91, 0xa6, 0x1e, 0x19, 0xd1, 0x4f, 0x1d, 0xa4, 0x52, 0xe6, 0x6d, 0xb2, 0x40, 0x8c, 0xa8, 0x60, 0x4d, 0x41, 0x1f, 0x92, 0x65, 0x9f, 0xa}},
	SignatureData{Owner: util.EFIGUID{Data1: 0xc1095e1b, Data2: 0x8a3b, Data3: 0x4cf5, Data4: [8]uint8{0x9d, 0x4a, 0xaf, 0xc7, 0xd7, 0x5d, 0xca, 0x68}}, Data: []uint8{0x83, 0xb4, 0xd9, 0x69, 0x31, 0xbf, 0xd, 0x2, 0xfd, 0x91, 0xa6, 0x1e, 0x19, 0xd1, 0x4f, 0x1d, 0xa4, 0x52, 0xe6, 0x6d, 0xb2, 0x40, 0x8c, 0xa8, 0x60, 0x4d, 0x41, 0x1f, 0x92, 0x65, 0x9f, 0xa}},
}

func TestSiglist(t *testing.T) {
	sl := NewSignatureList(CERT_SHA256_GUID)
	for _, sig := range sigdata {
		sl.AppendBytes(sig.Owner, sig.Data)
	}
	if sl.ListSize != 172 {
		t.Fatal("list size incorrect")
	}
	if sl.Size != 48 {
		t.Fatal("size incorrect")
	}
	if len(sl.Signatures) != 3 {
		t.Fatal("number of signatures wrong")
	}
	if len(sl.Bytes()) != 172 {
		t.Fatal("serialized size incorrect")
	}
}

func TestSiglistSigDataExists(t *testing.T) {
	sl := NewSignatureList(CERT_SHA256_GUID)
	for _, sig := range sigdata {
		sl.AppendBytes(sig.Owner, sig.Data)
	}
	if ok, _ := sl.Exists(&sigdata[0]); !ok {
		t.Fatal("exists: sigdata is not in the list")
	}
	if err := sl.AppendBytes(sigdata[0].Owner, sigdata[0].Data); err != ErrSigDataExists {
		t.Fatalf("expected ErrSigDataExists, got %v", err)
	}
}

func TestSiglistRoundTrip(t *testing.T) {
	sl := NewSignatureList(CERT_SHA256_GUID)
	for _, sig := range sigdata {
		sl.AppendBytes(sig.Owner, sig.Data)
	}
	var lists []*SignatureList
	for l := range WalkSignatureLists(sl.Bytes()) {
		lists = append(lists, l)
	}
	if len(lists) != 1 {
		t.Fatalf("expected one list, got %d", len(lists))
	}
	l := lists[0]
	if l.Malformed != nil {
		t.Fatalf("unexpected malformed list: %v", l.Malformed)
	}
	if l.Type != SHA256 || l.Len() != 3 {
		t.Fatalf("unexpected list %v with %d entries", l.Type, l.Len())
	}
	for i, sd := range l.Entries() {
		if !util.CmpEFIGUID(sd.Owner, sigdata[i].Owner) {
			t.Fatalf("entry %d: owner %s", i, sd.Owner)
		}
		if !bytes.Equal(sd.Data, sigdata[i].Data) {
			t.Fatalf("entry %d: data %x", i, sd.Data)
		}
	}
}
