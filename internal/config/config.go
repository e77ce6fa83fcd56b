// internal/config/config.go
package config

type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	Publish  *PublishConfig `yaml:"publish"` // optional
}

// ---- REGISTRY ----

type RegistryConfig struct {
	Capacity   int               `yaml:"capacity"`
	Subsystems []SubsystemConfig `yaml:"subsystems"`
}

// ---- SUBSYSTEM SEED ----

type SubsystemConfig struct {
	Name   string       `yaml:"name"`
	Status StatusConfig `yaml:"status"`
	Data   uint32       `yaml:"data"` // 0 => nothing pending
}

// StatusConfig seeds every field except DATA, which follows Data.
type StatusConfig struct {
	Power       uint8 `yaml:"power"`
	Activity    uint8 `yaml:"activity"`
	Error       uint8 `yaml:"error"`
	Performance uint8 `yaml:"performance"`
	Resource    uint8 `yaml:"resource"`
}

// ---- PUBLISH ----

const (
	TransportModbus = "modbus"
	TransportIngest = "ingest"
)

type PublishConfig struct {
	Transport string `yaml:"transport"` // modbus (default) | ingest
	Endpoint  string `yaml:"endpoint"`
	UnitID    uint8  `yaml:"unit_id"`
	Address   uint16 `yaml:"address"` // first register of the status memory
	TimeoutMs int    `yaml:"timeout_ms"`
}
