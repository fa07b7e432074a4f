package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gysosin/sysinfo_exporter/internal/collectors"
	"github.com/kardianos/service"
	"github.com/nats-io/nats.go"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds runtime configuration read from JSON (optional).
type Config struct {
	Port       string `json:"port"`
	SystemName string `json:"system_name"`
	NatsURL    string `json:"nats_url"`
	LogFile    string `json:"log_file"`
}

// Global config
var config Config

// loadConfig reads a JSON configuration file into the config struct.
func loadConfig(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &config)
}

// setupLogging routes the standard logger through a rotating file when
// log_file is configured; otherwise logging stays on stderr.
func setupLogging() {
	if config.LogFile == "" {
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    20, // megabytes
		MaxBackups: 3,
	})
}

// snapshotHandler serves the current snapshot as JSON.
func snapshotHandler(w http.ResponseWriter, r *http.Request) {
	snap := collectors.GetSnapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Printf("Failed to encode snapshot: %v", err)
	}
}

// program implements service.Interface for running as a system service.
type program struct {
	Port string
}

// Start is called when the service starts.
func (p *program) Start(s service.Service) error {
	// Run the service asynchronously.
	go p.run()
	return nil
}

// run sets up the HTTP endpoints and listens on p.Port.
func (p *program) run() {
	addr := ":" + p.Port
	log.Printf("Starting HTTP server on %s...", addr)
	http.HandleFunc("/snapshot", snapshotHandler)
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("HTTP server failed: %v", err)
	}
}

// Stop is called when the service stops.
func (p *program) Stop(s service.Service) error {
	log.Println("Service stopping")
	os.Exit(0)
	return nil
}

// pushSnapshots connects to NATS JetStream and periodically publishes the
// current snapshot.
func pushSnapshots(natsURL string, interval time.Duration) {
	nc, err := nats.Connect(natsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer nc.Drain()

	js, err := nc.JetStream()
	if err != nil {
		log.Fatalf("Failed to get JetStream context: %v", err)
	}

	subject := "sysinfo"
	log.Printf("Starting push to NATS JetStream at subject=%s every=%v", subject, interval)

	// If no system name is specified in config, try to use the hostname.
	if config.SystemName == "" {
		hn, err := os.Hostname()
		if err != nil {
			log.Fatalf("System name not specified and unable to get hostname: %v", err)
		}
		config.SystemName = hn
		log.Printf("No system_name in config; using hostname: %s", config.SystemName)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		<-ticker.C
		snap := collectors.GetSnapshot()
		payload := struct {
			SystemName string              `json:"system_name"`
			Snapshot   collectors.Snapshot `json:"snapshot"`
		}{config.SystemName, snap}
		msgPayload, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal snapshot payload: %v", err)
			continue
		}
		_, err = js.Publish(subject, msgPayload)
		if err != nil {
			log.Printf("Failed to publish snapshot: %v", err)
		} else {
			log.Printf("Published snapshot to subject %s", subject)
		}
	}
}

func main() {
	// Service config for running under the system service manager.
	svcConfig := &service.Config{
		Name:        "SysinfoExporterService",
		DisplayName: "Sysinfo Exporter Service",
		Description: "Exposes a machine telemetry snapshot (system/cpu/memory/disk/gpu) over HTTP or NATS push.",
	}

	// Flags.
	configFile := flag.String("config", "config.json", "Path to JSON config file")
	svcFlag := flag.String("service", "", "Install/uninstall/start/stop/run the system service (example: --service=install)")
	portFlag := flag.String("port", "", "Override port from config.json (e.g. 9184)")
	pushFlag := flag.Bool("push", false, "Enable push mode (publish to NATS JetStream)")
	natsURLFlag := flag.String("nats_url", "", "NATS server URL")
	pushIntervalFlag := flag.String("push_interval", "5s", "How often to push snapshots, e.g. 500ms, 5s")
	logFileFlag := flag.String("log_file", "", "Rotating log file path (default: stderr)")

	flag.Parse()

	// Load the config.
	if err := loadConfig(*configFile); err != nil {
		log.Printf("Could not read config file %s. Using defaults: %v", *configFile, err)
		config.Port = "9184"
		config.SystemName = ""
		config.NatsURL = "nats://127.0.0.1:4222"
	}

	// Override config values from flags if provided.
	if *portFlag != "" {
		config.Port = *portFlag
	}
	if *natsURLFlag != "" {
		config.NatsURL = *natsURLFlag
	}
	if *logFileFlag != "" {
		config.LogFile = *logFileFlag
	}

	setupLogging()

	// Probe optional GPU telemetry once, up front.
	collectors.DetectGPU()

	// Parse the push interval.
	interval, err := time.ParseDuration(*pushIntervalFlag)
	if err != nil {
		log.Printf("Invalid push_interval=%s. Defaulting to 5s", *pushIntervalFlag)
		interval = 5 * time.Second
	}

	// If push mode is enabled, run pushSnapshots.
	if *pushFlag {
		pushSnapshots(config.NatsURL, interval)
		return
	}

	// If not push mode, run the HTTP endpoint or service.
	prg := &program{Port: config.Port}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Fatalf("Cannot start service: %v", err)
	}

	// Handle service control actions.
	if *svcFlag != "" {
		if err := service.Control(s, *svcFlag); err != nil {
			log.Printf("Valid service actions: install, uninstall, start, stop, run")
			log.Fatal(err)
		}
		log.Printf("Service action '%s' executed successfully.", *svcFlag)
		return
	}

	// Run the HTTP endpoint in the foreground.
	if err := s.Run(); err != nil {
		log.Fatal(err)
	}
}
