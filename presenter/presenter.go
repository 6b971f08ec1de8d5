// Package presenter renders image execution info records and signature
// lists as text, one block per image and per signature.
package presenter

import (
	"encoding/hex"
	"fmt"
	"io"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/foxboron/go-execinfo/efi/device"
	"github.com/foxboron/go-execinfo/efi/execinfo"
	"github.com/foxboron/go-execinfo/efi/signature"
)

var log = logrus.WithField("service", "presenter")

const truncated = "<truncated>"

// HexDump renders b as offset, hex and ASCII columns.
func HexDump(b []byte) string {
	return hex.Dump(b)
}

// Printer writes blocks to w. The text conversions can be replaced, they
// default to device.Format and HexDump.
type Printer struct {
	w   io.Writer
	err error

	DevicePathToText func([]byte) string
	HexDump          func([]byte) string
}

func New(w io.Writer) *Printer {
	return &Printer{
		w:                w,
		DevicePathToText: device.Format,
		HexDump:          HexDump,
	}
}

// printf keeps the first write error and drops everything after it.
func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// PrintTable writes one block per record and returns how many records were
// printed.
func (p *Printer) PrintTable(records iter.Seq[*execinfo.ImageExecutionInfo]) (int, error) {
	n := 0
	for r := range records {
		if n > 0 {
			p.printf("\n")
		}
		p.printRecord(r)
		n++
		if p.err != nil {
			break
		}
	}
	return n, p.err
}

func (p *Printer) printRecord(r *execinfo.ImageExecutionInfo) {
	if err := r.Malformed(); err != nil {
		log.WithError(err).Warnf("image %d at offset %#x is malformed", r.Index, r.Offset)
	}

	dp := truncated
	if len(r.DevicePath) > 0 || !r.DevicePathTruncated {
		dp = p.DevicePathToText(r.DevicePath)
	}
	name := r.Name
	if r.NameTruncated {
		name = truncated
	}
	p.printf("Image %d:\n", r.Index)
	p.printf("  Device: %s\n", dp)
	p.printf("    Name: %s\n", name)
	p.printf("   State: %s\n", r.Action)

	if len(r.Signature) > 0 {
		p.printf("\n")
		p.PrintSignatureLists(r.SignatureLists())
	}
}

// PrintSignatureLists writes one block per signature data entry, numbered
// by list and entry index. It returns the number of lists walked.
func (p *Printer) PrintSignatureLists(lists iter.Seq[*signature.SignatureList]) (int, error) {
	li := 0
	blocks := 0
	for sl := range lists {
		for si, sig := range sl.Entries() {
			if blocks > 0 {
				p.printf("\n")
			}
			p.printSignature(li, si, sl, sig)
			blocks++
		}
		if sl.Malformed != nil {
			log.WithError(sl.Malformed).Warnf("signature list %d at offset %#x is malformed", li, sl.Offset)
			if sl.Len() == 0 {
				if blocks > 0 {
					p.printf("\n")
				}
				p.printf("Signature %d:\n", li)
				p.printType(sl)
				blocks++
			}
			p.printf("(malformed: %v)\n", sl.Malformed)
		}
		li++
		if p.err != nil {
			break
		}
	}
	return li, p.err
}

func (p *Printer) printType(sl *signature.SignatureList) {
	if sl.Type == signature.Unsupported {
		p.printf("    Type: %s\n", sl.SignatureType.String())
		return
	}
	p.printf("    Type: %s\n", sl.Type)
}

func (p *Printer) printSignature(li, si int, sl *signature.SignatureList, sig signature.SignatureData) {
	p.printf("Signature %d.%d:\n", li, si)
	p.printType(sl)
	p.printf("   Owner: %s\n", sig.Owner.String())

	switch sl.Type.Payload() {
	case signature.PayloadHash:
		p.printf("    Hash: %x\n", sig.Data)
	case signature.PayloadRSA2048:
		p.printf(" Modulus: \n%s", p.HexDump(sig.Data))
	case signature.PayloadX509TBSHash:
		digest, t, err := signature.SplitTBSHash(sig.Data)
		if err != nil {
			p.printf("    Hash: %s\n", truncated)
			return
		}
		p.printf("    Hash: %x\n", digest)
		p.printf(" Expires: %s\n", t.Format())
	case signature.PayloadExternal:
	case signature.PayloadX509:
		for _, line := range summarizeCertificate(sig.Data) {
			p.printf("%s\n", line)
		}
		p.printf("    Data: \n%s", p.HexDump(sig.Data))
	default:
		p.printf("    Data: \n%s", p.HexDump(sig.Data))
	}
}
