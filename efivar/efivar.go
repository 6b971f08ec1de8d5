package efivar

import (
	"strings"

	"github.com/foxboron/go-execinfo/efi/attributes"
	"github.com/foxboron/go-execinfo/efi/util"
)

type Efivar struct {
	Name       string
	GUID       util.EFIGUID
	Attributes attributes.Attributes
}

var (
	EFI_GLOBAL_VARIABLE              = util.MustGUID("8be4df61-93ca-11d2-aa0d-00e098032b8c")
	EFI_IMAGE_SECURITY_DATABASE_GUID = util.MustGUID("d719b2cb-3d3a-4596-a3bc-dad00e67656f")

	authenticated = attributes.EFI_VARIABLE_NON_VOLATILE |
		attributes.EFI_VARIABLE_BOOTSERVICE_ACCESS |
		attributes.EFI_VARIABLE_RUNTIME_ACCESS |
		attributes.EFI_VARIABLE_TIME_BASED_AUTHENTICATED_WRITE_ACCESS
	readOnlyDefault = attributes.EFI_VARIABLE_NON_VOLATILE |
		attributes.EFI_VARIABLE_RUNTIME_ACCESS
)

// Definitions for standard EFI variables
var (
	// Whether the platform firmware is operating in Secure boot
	// mode (1) or not (0). All other values are reserved. Should be
	// treated as read-only.
	SecureBoot = Efivar{"SecureBoot", EFI_GLOBAL_VARIABLE,
		attributes.EFI_VARIABLE_BOOTSERVICE_ACCESS |
			attributes.EFI_VARIABLE_RUNTIME_ACCESS}

	// Whether the system should require authentication on
	// SetVariable() requests to Secure Boot policy variables (0) or
	// not (1). Should be treated as read-only.
	SetupMode = Efivar{"SetupMode", EFI_GLOBAL_VARIABLE,
		attributes.EFI_VARIABLE_BOOTSERVICE_ACCESS |
			attributes.EFI_VARIABLE_RUNTIME_ACCESS}

	// The public Platform Key.
	PK = Efivar{"PK", EFI_GLOBAL_VARIABLE, authenticated}

	// The OEM's default public Platform Key. Should be treated as
	// read-only
	PKDefault = Efivar{"PKDefault", EFI_GLOBAL_VARIABLE, readOnlyDefault}

	// The Key Exchange Key Signature Database.
	KEK = Efivar{"KEK", EFI_GLOBAL_VARIABLE, authenticated}

	// The OEM's default Key Exchange Key Signature Database.  Should be treated
	// as read-only.
	KEKDefault = Efivar{"KEKDefault", EFI_GLOBAL_VARIABLE, readOnlyDefault}

	// Authorized signature database
	Db = Efivar{"db", EFI_IMAGE_SECURITY_DATABASE_GUID, authenticated}

	// The OEM's default secure boot signature store. Should be treated as
	// read-only.
	DbDefault = Efivar{"dbDefault", EFI_GLOBAL_VARIABLE, readOnlyDefault}

	// Forbidden signature database
	Dbx = Efivar{"dbx", EFI_IMAGE_SECURITY_DATABASE_GUID, authenticated}

	// The OEM's default secure boot blacklist signature store.
	// Should be treated as read-only.
	DbxDefault = Efivar{"dbxDefault", EFI_GLOBAL_VARIABLE, readOnlyDefault}

	// Authorized timestamp signature database
	Dbt = Efivar{"dbt", EFI_IMAGE_SECURITY_DATABASE_GUID, authenticated}

	// Authorized recovery signature database
	Dbr = Efivar{"dbr", EFI_IMAGE_SECURITY_DATABASE_GUID, authenticated}
)

// SignatureDatabases are the variables holding EFI_SIGNATURE_LIST data
var SignatureDatabases = []Efivar{PK, PKDefault, KEK, KEKDefault, Db, DbDefault, Dbx, DbxDefault, Dbt, Dbr}

// LookupSignatureDatabase finds a signature database variable by name,
// ignoring case.
func LookupSignatureDatabase(name string) (Efivar, bool) {
	for _, v := range SignatureDatabases {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Efivar{}, false
}

// Filename is the efivarfs file name of the variable.
func (e Efivar) Filename() string {
	return e.Name + "-" + e.GUID.String()
}
