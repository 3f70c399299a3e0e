package main

// PodStatus identifies the pod serving a stateless tier.
type PodStatus struct {
	PodName string // Pod (instance) name
	PodIP   string // Pod network address
}

// DatabaseStatus describes the database tier as seen from the application.
type DatabaseStatus struct {
	Host      string // Host or service name
	HostIP    string // Resolved host address
	Status    string // Human-readable status message
	Connected bool   // Whether the application reached the database
}

// Snapshot is the status of all three tiers at render time.
// A snapshot is built once per render and never mutated afterwards.
type Snapshot struct {
	Web         PodStatus
	Application PodStatus
	Database    DatabaseStatus
}

// sampleSnapshot returns the fixed mock status shown by the dashboard.
// Every call returns a fresh value.
func sampleSnapshot() Snapshot {
	return Snapshot{
		Web: PodStatus{
			PodName: "web-v2-98fc6cfbc-jb56w",
			PodIP:   "192.168.1.104",
		},
		Application: PodStatus{
			PodName: "was-v4-64f876c6d4-h4jjm",
			PodIP:   "192.168.2.139",
		},
		Database: DatabaseStatus{
			Host:      "db",
			HostIP:    "10.101.207.125",
			Status:    "Connected to DB at db:3306",
			Connected: true,
		},
	}
}
