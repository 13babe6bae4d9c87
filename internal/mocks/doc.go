// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes one function field per interface method. When a field is
// nil the mock falls back to its default return values, so tests only set
// what they care about:
//
//	tokens := &mocks.MockTokenService{
//	    VerifyFn: func(ctx context.Context, token string) (*auth.Identity, error) {
//	        return &auth.Identity{UserID: 1, IsAdmin: true}, nil
//	    },
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Document any helper methods or special functionality
package mocks
