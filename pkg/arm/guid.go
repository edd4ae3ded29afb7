package arm

import "github.com/google/uuid"

// guidNamespace seeds the name-based UUID scheme used for derived resource
// identities. Changing it would rename every derived resource on the next
// deployment, so it is fixed for the lifetime of the module.
var guidNamespace = uuid.MustParse("5d6cbc4c-9b4b-4f94-b63b-fe47f1a9f71b")

// DeterministicGUID maps a seed string to a stable UUID using the SHA-1
// name-based scheme from RFC 4122. The same seed produces the same UUID
// across runs, processes and machines, which lets derived resource names
// (role assignments in particular) stay stable between deployments without
// any persisted state.
func DeterministicGUID(seed string) uuid.UUID {
	return uuid.NewSHA1(guidNamespace, []byte(seed))
}
