package presenter

import (
	"crypto/x509"
	"fmt"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// summarizeCertificate describes a DER certificate in a few labelled lines.
// Certificates crypto/x509 refuses still get their DER envelope described.
func summarizeCertificate(der []byte) []string {
	cert, err := x509.ParseCertificate(der)
	if err == nil {
		return []string{
			fmt.Sprintf(" Subject: %s", cert.Subject),
			fmt.Sprintf("  Issuer: %s", cert.Issuer),
			fmt.Sprintf("  Serial: %x", cert.SerialNumber),
		}
	}
	log.WithError(err).Debug("could not parse X.509 certificate")
	return []string{fmt.Sprintf("    X509: %s", describeDER(der))}
}

// describeDER reports the outer structure of a certificate: a SEQUENCE
// holding the TBSCertificate, the signature algorithm and the signature.
func describeDER(der []byte) string {
	input := cryptobyte.String(der)
	var cert cryptobyte.String
	if !input.ReadASN1(&cert, asn1.SEQUENCE) {
		return "not a DER sequence"
	}
	trailing := len(input)

	var tbs cryptobyte.String
	if !cert.ReadASN1Element(&tbs, asn1.SEQUENCE) {
		return fmt.Sprintf("unparsable certificate, %d byte sequence without TBSCertificate", len(der)-trailing)
	}
	s := fmt.Sprintf("unparsable certificate, %d byte TBSCertificate", len(tbs))
	if trailing > 0 {
		s += fmt.Sprintf(", %d trailing bytes", trailing)
	}
	return s
}
