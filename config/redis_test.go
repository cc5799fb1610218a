package config

import "testing"

// The config tests run with APPENV=test, so ConnectRedis must take the
// skip path and leave the client nil rather than dial anything.
func TestConnectRedisSkipsInTestEnv(t *testing.T) {
	t.Setenv("APPENV", "test")

	rdb, err := ConnectRedis()
	if err != nil {
		t.Fatalf("expected no error in test environment, got %v", err)
	}
	if rdb != nil {
		t.Fatalf("expected nil client in test environment")
	}
	if GetRedisClient() != nil {
		t.Fatalf("GetRedisClient must stay nil when connection was skipped")
	}
}

func TestSetRedisClientForTesting(t *testing.T) {
	prev := GetRedisClient()
	t.Cleanup(func() { SetRedisClientForTesting(prev) })

	SetRedisClientForTesting(nil)
	if GetRedisClient() != nil {
		t.Fatalf("injected nil client not returned")
	}
}
