package domain

import "testing"

// FuzzParseCoordinatorID checks that parsing never panics on arbitrary input
// and that any accepted value round-trips through String.
func FuzzParseCoordinatorID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseCoordinatorID(input)
		if err != nil {
			return
		}
		roundTrip, err := ParseCoordinatorID(id.String())
		if err != nil {
			t.Fatalf("accepted id failed round-trip: %v", err)
		}
		if roundTrip != id {
			t.Fatal("round-trip changed id value")
		}
	})
}
