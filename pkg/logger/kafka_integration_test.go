package logger

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestKafkaSinkPublishesRecords starts a single-node KRaft broker, logs through
// the kafka sink and reads the record back from the topic.
func TestKafkaSinkPublishesRecords(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping kafka integration test in short mode")
	}

	ctx := context.Background()
	broker, containerInstance := initializeKafka(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			log.Printf("Failed to terminate container: %v", err)
		}
	}()

	cfg := testConfig(t, EnvironmentProduction)
	cfg.Transports = []string{"kafka"}
	cfg.KafkaBrokers = []string{broker}
	cfg.KafkaTopic = "service-logs"

	client, err := NewLoggerClient(cfg, WithConsoleOutput(io.Discard))
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	client.Error("settlement failed", nil, map[string]interface{}{"batch": "b-17"})

	// the first write pays for metadata and topic creation; later ones are a
	// single produce round trip
	start := time.Now()
	client.Warn("settlement retried", nil)
	require.Less(t, time.Since(start), 500*time.Millisecond, "a record must not wait for a batch timeout")

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     cfg.KafkaTopic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  10e6,
	})
	defer reader.Close()

	readCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &record))
	require.Equal(t, "billing", string(msg.Key))
	require.Equal(t, "settlement failed", record["message"])
	require.Equal(t, "error", record["status"])
	require.Equal(t, "b-17", record["batch"])
	require.Equal(t, "production", record["env"])
}

// initializeKafka binds the broker to a fixed free host port so the advertised
// listener matches what the client dials.
func initializeKafka(ctx context.Context, t *testing.T) (string, testcontainers.Container) {
	t.Helper()

	hostPort, err := getFreePort()
	require.NoError(t, err)

	req := testcontainers.ContainerRequest{
		Image:        "apache/kafka:3.7.0",
		ExposedPorts: []string{"9092/tcp"},
		Env: map[string]string{
			"KAFKA_NODE_ID":                                  "1",
			"KAFKA_PROCESS_ROLES":                            "broker,controller",
			"KAFKA_LISTENERS":                                "PLAINTEXT://:9092,CONTROLLER://:9093",
			"KAFKA_ADVERTISED_LISTENERS":                     "PLAINTEXT://localhost:" + hostPort,
			"KAFKA_CONTROLLER_LISTENER_NAMES":                "CONTROLLER",
			"KAFKA_LISTENER_SECURITY_PROTOCOL_MAP":           "CONTROLLER:PLAINTEXT,PLAINTEXT:PLAINTEXT",
			"KAFKA_CONTROLLER_QUORUM_VOTERS":                 "1@localhost:9093",
			"KAFKA_OFFSETS_TOPIC_REPLICATION_FACTOR":         "1",
			"KAFKA_TRANSACTION_STATE_LOG_REPLICATION_FACTOR": "1",
			"KAFKA_TRANSACTION_STATE_LOG_MIN_ISR":            "1",
			"KAFKA_AUTO_CREATE_TOPICS_ENABLE":                "true",
		},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = nat.PortMap{
				"9092/tcp": []nat.PortBinding{{HostPort: hostPort}},
			}
		},
		WaitingFor: wait.ForListeningPort("9092/tcp").WithStartupTimeout(60 * time.Second),
	}

	containerInstance, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	return net.JoinHostPort("localhost", hostPort), containerInstance
}

func getFreePort() (string, error) {
	l, err := net.Listen("tcp", ":0") // :0 asks OS for any free port
	if err != nil {
		return "", err
	}
	defer l.Close()
	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port), nil
}
