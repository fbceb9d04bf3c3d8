package sessionstore_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Shared Redis container for the session store end-to-end tests. Each test
 * uses its own key prefix so tests do not see each other's sessions.
 */

const redisImage = "redis:7-alpine"

var redisURL string

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	ctx := context.Background()

	fmt.Fprintf(os.Stdout, "Starting Redis container...")
	container, url, err := startRedis(ctx)
	if err != nil {
		// No Docker available: the tests skip themselves.
		fmt.Fprintf(os.Stdout, " unavailable: %v\n", err)
		os.Exit(m.Run())
	}
	fmt.Fprintf(os.Stdout, " done\n")
	redisURL = url

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Stopping Redis container...")
	if err := container.Terminate(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "\nfailed to terminate container: %v\n", err)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func startRedis(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForLog("Ready to accept connections").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", err
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}
	mappedPort, err := container.MappedPort(ctx, "6379")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", err
	}

	return container, fmt.Sprintf("redis://%s:%s/0", host, mappedPort.Port()), nil
}

// requireRedis skips the test when no container could be started.
func requireRedis(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping redis end-to-end test in short mode")
	}
	if redisURL == "" {
		t.Skip("redis container unavailable")
	}
	return redisURL
}

// uniquePrefix isolates one test's keys.
func uniquePrefix(t *testing.T) string {
	return fmt.Sprintf("campus-e2e:%s:%d:", t.Name(), time.Now().UnixNano())
}
