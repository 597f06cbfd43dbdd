// Package testing provides fixtures shared by purge tests.
//
//   - CloudFixture: an in-memory project whose MockCloud records every call
//     in order, so tests can assert on unwinding and deletion sequences.
//   - TestContext: a context bounded for test runs.
//
// Usage:
//
//	fixture := testing.NewCloudFixture("demo").
//	    With(purge.KindPort, testing.Port("p1", purge.RouterGateway{RouterID: "R1"}))
//	res, err := purge.New(fixture.Mock()).Run(ctx, purge.Options{Project: "demo"})
//	// fixture.Calls() == [..., "ClearRouterGateway R1", "DeletePort p1", ...]
package testing
