package config

import (
    "os"
    "path/filepath"
    "testing"
    "time"
)

func TestDefaultsWithoutFile(t *testing.T) {
    if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
        t.Error("explicitly named missing file accepted")
    }

    cfg, err := Load("")
    if err != nil {
        t.Fatal(err)
    }
    if cfg.AppName != "mechlink-node" || cfg.NodeID != "node-1" {
        t.Fatalf("defaults = %+v", cfg)
    }
    if cfg.Action.ResultTTL != 10*time.Minute || cfg.Action.StatusPeriod != time.Second {
        t.Fatalf("action defaults = %+v", cfg.Action)
    }
    if len(cfg.Transports) != 1 || cfg.Transports[0].Kind != "tcp" {
        t.Fatalf("transport defaults = %+v", cfg.Transports)
    }
}

func TestEnvOverride(t *testing.T) {
    t.Setenv("MECHLINK_LOG_LEVEL", "debug")
    t.Setenv("MECHLINK_NODE_ID", "arm-7")

    cfg, err := Load("")
    if err != nil {
        t.Fatal(err)
    }
    if cfg.Log.Level != "debug" {
        t.Fatalf("log.level = %q", cfg.Log.Level)
    }
    if cfg.NodeID != "arm-7" {
        t.Fatalf("node_id = %q", cfg.NodeID)
    }
}

func TestLoadFromFile(t *testing.T) {
    dir := t.TempDir()
    path := filepath.Join(dir, "mechlink.yaml")
    yaml := `
app_name: bench
node_id: bench-1
log:
  level: warn
  format: json
transports:
  - kind: quic
    listen: [":4433"]
    dial:
      - address: "10.0.0.2:4433"
        peer_id: "arm-controller"
action:
  result_ttl: 30s
  status_period: 250ms
record:
  enable: true
  codec: json
`
    if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
        t.Fatal(err)
    }

    cfg, err := Load(path)
    if err != nil {
        t.Fatal(err)
    }
    if cfg.AppName != "bench" || cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
        t.Fatalf("cfg = %+v", cfg)
    }
    if len(cfg.Transports) != 1 || cfg.Transports[0].Kind != "quic" ||
        cfg.Transports[0].Dial[0].PeerID != "arm-controller" {
        t.Fatalf("transports = %+v", cfg.Transports)
    }
    if cfg.Action.ResultTTL != 30*time.Second || cfg.Action.StatusPeriod != 250*time.Millisecond {
        t.Fatalf("action = %+v", cfg.Action)
    }
    if !cfg.Record.Enable || cfg.Record.Codec != "json" {
        t.Fatalf("record = %+v", cfg.Record)
    }
}

func TestValidateRejectsBadValues(t *testing.T) {
    dir := t.TempDir()

    badLevel := filepath.Join(dir, "badlevel.yaml")
    _ = os.WriteFile(badLevel, []byte("log:\n  level: verbose\n"), 0o644)
    if _, err := Load(badLevel); err == nil {
        t.Error("bad log level accepted")
    }

    badKind := filepath.Join(dir, "badkind.yaml")
    _ = os.WriteFile(badKind, []byte("transports:\n  - kind: carrier_pigeon\n"), 0o644)
    if _, err := Load(badKind); err == nil {
        t.Error("bad transport kind accepted")
    }

    badCodec := filepath.Join(dir, "badcodec.yaml")
    _ = os.WriteFile(badCodec, []byte("record:\n  codec: xml\n"), 0o644)
    if _, err := Load(badCodec); err == nil {
        t.Error("bad record codec accepted")
    }
}
