package efitest

import (
	"encoding/binary"
	"fmt"
	"testing/fstest"
)

const Efivars = "/sys/firmware/efi/efivars"

var (
	globalVariable        = "8be4df61-93ca-11d2-aa0d-00e098032b8c"
	imageSecurityDatabase = "d719b2cb-3d3a-4596-a3bc-dad00e67656f"
)

// Attributes of the authenticated secure boot variables: NV, BS, RT and AT
const authenticatedAttributes uint32 = 0x27

// Variable lays out an efivarfs file: the attribute word followed by data.
func Variable(name, guid string, attrs uint32, data []byte) fstest.MapFS {
	b := binary.LittleEndian.AppendUint32(nil, attrs)
	return fstest.MapFS{
		fmt.Sprintf("%s/%s-%s", Efivars, name, guid): {Data: append(b, data...)},
	}
}

func SecureBootOn() fstest.MapFS {
	return Variable("SecureBoot", globalVariable, 0x6, []byte{0x1})
}

func SecureBootOff() fstest.MapFS {
	return Variable("SecureBoot", globalVariable, 0x6, []byte{0x0})
}

// SignatureDatabase places siglist under the efivarfs name of a secure boot
// database: PK and KEK use the global variable GUID, db/dbx/dbt/dbr the image
// security database GUID.
func SignatureDatabase(name string, siglist []byte) fstest.MapFS {
	guid := globalVariable
	switch name {
	case "db", "dbx", "dbt", "dbr":
		guid = imageSecurityDatabase
	}
	return Variable(name, guid, authenticatedAttributes, siglist)
}

// File places raw bytes at path.
func File(path string, data []byte) fstest.MapFS {
	return fstest.MapFS{path: {Data: data}}
}
