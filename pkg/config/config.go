package config

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	Target            string // address of the ingestion service (host:port or url)
	Selector          string // dataset to stream: season/event/session/driver
	DriverID          string // driver id sent with each message (default: selector driver)
	Source            string // data source: csv, json or postgres
	File              string // file for csv and json sources
	DB                string // connection string for the database
	Pacing            string // fixed delay between two messages
	Speed             int    // replay speed factor, paces by recorded timestamps
	Deadline          string // overall time limit for one run, 0 means no limit
	Token             string // api token sent to the ingestion service
	TLS               bool   // use TLS instead of h2c
	TLSCAFile         string // path to TLS CA
	TLSSkipVerify     bool   // skip verification of the server certificate
	StrictCount       bool   // fail if the server processed a different number of messages
	WaitForTarget     string // duration to wait for the ingestion service to be reachable
	Repeat            int    // number of runs
	CacheTTL          string // keep loaded datasets in memory for repeated runs
	LogLevel          string // sets the log level (zap log level values)
	SQLLogLevel       string // sets the log level for sql subsystem
	LogFormat         string // text vs json
	LogFilter         string // zapfilter rules
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint for telemetry
	ListenAddr        string // listen addr for mock ingestion service
	MinClientVersion  string // minimum producer version accepted by mock ingestion service
	ServerStatus      string // status reported by mock ingestion service
	PrintMessage      bool   // if true, the message payload will be logged on debug level
)
