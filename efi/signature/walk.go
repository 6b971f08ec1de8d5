package signature

import (
	"iter"

	"github.com/foxboron/go-execinfo/efi/util"
)

// WalkSignatureLists walks the EFI_SIGNATURE_LIST records packed in region.
//
// A list whose size fields disagree with each other is still yielded, with
// Malformed set and its data run clipped or dropped. The walk ends when fewer
// than SizeofSignatureList bytes remain, or when a ListSize cannot be used to
// reach the next list.
func WalkSignatureLists(region []byte) iter.Seq[*SignatureList] {
	return func(yield func(*SignatureList) bool) {
		c := util.NewCursor(region)
		for c.Len() >= uint64(SizeofSignatureList) {
			start := c.Offset()
			sl, err := readSignatureListHeader(c)
			if err != nil {
				return
			}
			if sl.ListSize < SizeofSignatureList {
				return
			}
			body, err := util.Window(region, c.Offset(), uint64(sl.ListSize-SizeofSignatureList))
			if err != nil {
				return
			}
			sl.Offset = start
			sl.decodeBody(body)
			if !yield(sl) {
				return
			}
			if err := c.Seek(start + uint64(sl.ListSize)); err != nil {
				return
			}
		}
	}
}

func readSignatureListHeader(c *util.Cursor) (*SignatureList, error) {
	var sl SignatureList
	var err error
	if sl.SignatureType, err = c.GUID(); err != nil {
		return nil, err
	}
	for _, v := range []*uint32{&sl.ListSize, &sl.HeaderSize, &sl.Size} {
		if *v, err = c.Uint32(); err != nil {
			return nil, err
		}
	}
	sl.Type = ResolveSignatureType(sl.SignatureType)
	return &sl, nil
}

// decodeBody splits everything after the fixed header into the signature
// header and the signature data run.
func (sl *SignatureList) decodeBody(body []byte) {
	c := util.NewCursor(body)
	header, err := c.Read(uint64(sl.HeaderSize))
	if err != nil {
		sl.Malformed = ErrInconsistentListSize
		return
	}
	sl.SignatureHeader = header
	if sl.Size < util.SizeofEFIGUID {
		sl.Malformed = ErrInvalidSignatureSize
		return
	}
	run := c.Rest()
	n := uint64(len(run)) / uint64(sl.Size) * uint64(sl.Size)
	if n != uint64(len(run)) {
		sl.Malformed = ErrTrailingSignatureData
	}
	sl.data = run[:n:n]
}
