package signature

import (
	"github.com/foxboron/go-execinfo/efi/util"
)

// Section 32.4.1 Signature Database
// Page 1714 -> Page 1717
var (
	CERT_SHA256_GUID         = util.EFIGUID{Data1: 0xc1c41626, Data2: 0x504c, Data3: 0x4092, Data4: [8]uint8{0xac, 0xa9, 0x41, 0xf9, 0x36, 0x93, 0x43, 0x28}}
	CERT_RSA2048_GUID        = util.EFIGUID{Data1: 0x3c5766e8, Data2: 0x269c, Data3: 0x4e34, Data4: [8]uint8{0xaa, 0x14, 0xed, 0x77, 0x6e, 0x85, 0xb3, 0xb6}}
	CERT_RSA2048_SHA256_GUID = util.EFIGUID{Data1: 0xe2b36190, Data2: 0x879b, Data3: 0x4a3d, Data4: [8]uint8{0xad, 0x8d, 0xf2, 0xe7, 0xbb, 0xa3, 0x27, 0x84}}

	CERT_SHA1_GUID         = util.EFIGUID{Data1: 0x826ca512, Data2: 0xcf10, Data3: 0x4ac9, Data4: [8]uint8{0xb1, 0x87, 0xbe, 0x01, 0x49, 0x66, 0x31, 0xbd}}
	CERT_RSA2048_SHA1_GUID = util.EFIGUID{Data1: 0x67f8444f, Data2: 0x8743, Data3: 0x48f1, Data4: [8]uint8{0xa3, 0x28, 0x1e, 0xaa, 0xb8, 0x73, 0x60, 0x80}}

	CERT_X509_GUID = util.EFIGUID{Data1: 0xa5c059a1, Data2: 0x94e4, Data3: 0x4aa7, Data4: [8]uint8{0x87, 0xb5, 0xab, 0x15, 0x5c, 0x2b, 0xf0, 0x72}}

	CERT_SHA224_GUID = util.EFIGUID{Data1: 0xb6e5233, Data2: 0xa65c, Data3: 0x44c9, Data4: [8]uint8{0x94, 0x07, 0xd9, 0xab, 0x83, 0xbf, 0xc8, 0xbd}}

	CERT_SHA384_GUID = util.EFIGUID{Data1: 0xff3e5307, Data2: 0x9fd0, Data3: 0x48c9, Data4: [8]uint8{0x85, 0xf1, 0x8a, 0xd5, 0x6c, 0x70, 0x1e, 0x01}}

	CERT_SHA512_GUID = util.EFIGUID{Data1: 0x93e0fae, Data2: 0xa6c4, Data3: 0x4f50, Data4: [8]uint8{0x9f, 0x1b, 0xd4, 0x1e, 0x2b, 0x89, 0xc1, 0x9a}}

	CERT_X509_SHA256_GUID = util.EFIGUID{Data1: 0x3bd2a492, Data2: 0x96c0, Data3: 0x4079, Data4: [8]uint8{0xb4, 0x20, 0xfc, 0xf9, 0x8e, 0xf1, 0x03, 0xed}}
	CERT_X509_SHA384_GUID = util.EFIGUID{Data1: 0x7076876e, Data2: 0x80c2, Data3: 0x4ee6, Data4: [8]uint8{0xaa, 0xd2, 0x28, 0xb3, 0x49, 0xa6, 0x86, 0x5b}}
	CERT_X509_SHA512_GUID = util.EFIGUID{Data1: 0x446dbf63, Data2: 0x2502, Data3: 0x4cda, Data4: [8]uint8{0xbc, 0xfa, 0x24, 0x65, 0xd2, 0xb0, 0xfe, 0x9d}}

	CERT_EXTERNAL_MANAGEMENT_GUID = util.EFIGUID{Data1: 0x452e8ced, Data2: 0xdfff, Data3: 0x4b8c, Data4: [8]uint8{0xae, 0x01, 0x51, 0x18, 0x86, 0x2e, 0x68, 0x2c}}
)

// SignatureType is the closed set of signature list kinds this package knows
// about. Anything else is Unsupported.
type SignatureType int

const (
	Unsupported SignatureType = iota
	SHA256
	RSA2048
	RSA2048SHA256
	SHA1
	RSA2048SHA1
	X509
	SHA224
	SHA384
	SHA512
	X509SHA256
	X509SHA384
	X509SHA512
	ExternalManagement
)

var signatureTypes = map[util.EFIGUID]SignatureType{
	CERT_SHA256_GUID:              SHA256,
	CERT_RSA2048_GUID:             RSA2048,
	CERT_RSA2048_SHA256_GUID:      RSA2048SHA256,
	CERT_SHA1_GUID:                SHA1,
	CERT_RSA2048_SHA1_GUID:        RSA2048SHA1,
	CERT_X509_GUID:                X509,
	CERT_SHA224_GUID:              SHA224,
	CERT_SHA384_GUID:              SHA384,
	CERT_SHA512_GUID:              SHA512,
	CERT_X509_SHA256_GUID:         X509SHA256,
	CERT_X509_SHA384_GUID:         X509SHA384,
	CERT_X509_SHA512_GUID:         X509SHA512,
	CERT_EXTERNAL_MANAGEMENT_GUID: ExternalManagement,
}

var signatureTypeNames = [...]string{
	Unsupported:        "Unsupported",
	SHA256:             "SHA-256 Hash",
	RSA2048:            "RSA-2048 Public Key",
	RSA2048SHA256:      "RSA-2048 Signature of a SHA-256 Hash",
	SHA1:               "SHA-1 Hash",
	RSA2048SHA1:        "RSA-2048 Signature of a SHA-1 Hash",
	X509:               "X.509 Certificate",
	SHA224:             "SHA-224 Hash",
	SHA384:             "SHA-384 Hash",
	SHA512:             "SHA-512 Hash",
	X509SHA256:         "SHA-256 Hash of X.509 To-Be-Signed Contents",
	X509SHA384:         "SHA-384 Hash of X.509 To-Be-Signed Contents",
	X509SHA512:         "SHA-512 Hash of X.509 To-Be-Signed Contents",
	ExternalManagement: "Externally Managed",
}

// ResolveSignatureType maps a signature list type GUID to its kind.
func ResolveSignatureType(guid util.EFIGUID) SignatureType {
	return signatureTypes[guid]
}

func (s SignatureType) String() string {
	if s < 0 || int(s) >= len(signatureTypeNames) {
		return signatureTypeNames[Unsupported]
	}
	return signatureTypeNames[s]
}

// GUID returns the type GUID, or the zero GUID for Unsupported.
func (s SignatureType) GUID() util.EFIGUID {
	for g, t := range signatureTypes {
		if t == s {
			return g
		}
	}
	return util.EFIGUID{}
}

// PayloadKind tells a consumer how to read the bytes following the owner of
// a signature data entry.
type PayloadKind int

const (
	PayloadOpaque PayloadKind = iota
	PayloadHash
	PayloadRSA2048
	PayloadRSA2048Signature
	PayloadX509
	// Hash of the TBSCertificate followed by an EFI_TIME revocation time
	PayloadX509TBSHash
	PayloadExternal
)

func (s SignatureType) Payload() PayloadKind {
	switch s {
	case SHA1, SHA224, SHA256, SHA384, SHA512:
		return PayloadHash
	case RSA2048:
		return PayloadRSA2048
	case RSA2048SHA1, RSA2048SHA256:
		return PayloadRSA2048Signature
	case X509:
		return PayloadX509
	case X509SHA256, X509SHA384, X509SHA512:
		return PayloadX509TBSHash
	case ExternalManagement:
		return PayloadExternal
	}
	return PayloadOpaque
}

// SplitTBSHash splits a PayloadX509TBSHash payload into the digest and the
// time of revocation.
func SplitTBSHash(data []byte) ([]byte, util.EFITime, error) {
	if uint64(len(data)) < uint64(util.SizeofEFITime) {
		return nil, util.EFITime{}, util.ErrTruncated
	}
	n := len(data) - int(util.SizeofEFITime)
	t, err := util.ReadEFITime(data[n:])
	if err != nil {
		return nil, util.EFITime{}, err
	}
	return data[:n:n], t, nil
}
