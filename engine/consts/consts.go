package consts

import "time"

// Tunable Options
const (
	// For Underlying Networking
	// BUFFERED_READ_BUFFSIZE is the read buffer size of client connections
	BUFFERED_READ_BUFFSIZE = 16384
	// BUFFERED_WRITE_BUFFSIZE is the write buffer size of client connections
	BUFFERED_WRITE_BUFFSIZE = 16384
	// MAX_FRAME_PAYLOAD_LENGTH is the maximum length of one request or reply frame
	MAX_FRAME_PAYLOAD_LENGTH = 4 * 1024 * 1024
	// FRAME_PAYLOAD_LEN_COMPRESS_THRESHOLD is the minimal reply payload length that should be compressed
	FRAME_PAYLOAD_LEN_COMPRESS_THRESHOLD = 512
	// CLIENT_IDLE_TIMEOUT closes client connections without any request for this long
	CLIENT_IDLE_TIMEOUT = time.Minute * 10
	// CLIENT_WRITE_TIMEOUT is the deadline for writing one reply
	CLIENT_WRITE_TIMEOUT = time.Second * 10

	// For Rate Limiting
	// CLIENT_RATE_LIMIT is the default number of requests per second per connection
	CLIENT_RATE_LIMIT = 10
	// CLIENT_RATE_BURST is the default burst of requests per connection
	CLIENT_RATE_BURST = 20

	// For Storage
	// STORAGE_MAX_RETRIES is the default number of retries of a conflicting transaction
	STORAGE_MAX_RETRIES = 3
	// STORAGE_RETRY_BACKOFF is the base sleep between two attempts of a conflicting transaction
	STORAGE_RETRY_BACKOFF = time.Millisecond * 20

	// For Journal
	// JOURNAL_QUEUE_WARN_STEP logs a warning whenever the journal queue grows by this many entries
	JOURNAL_QUEUE_WARN_STEP = 100
	// JOURNAL_RECONNECT_INTERVAL is the sleep between two attempts to open the journal backend
	JOURNAL_RECONNECT_INTERVAL = time.Second

	// For Operation Monitor
	// OPMON_DUMP_INTERVAL is the interval to print opmon infos to output
	OPMON_DUMP_INTERVAL = 0
	// OPERATOR_WARN_THRESHOLD logs operators taking longer
	OPERATOR_WARN_THRESHOLD = time.Millisecond * 200
	// EXECUTOR_WARN_THRESHOLD logs requests taking longer
	EXECUTOR_WARN_THRESHOLD = time.Millisecond * 500

	// For Server Status
	// STATUS_REPORT_INTERVAL is the interval of process status logs
	STATUS_REPORT_INTERVAL = time.Minute
)

// Debug Options
const (
	// DEBUG_FRAMES prints frame send/recv debug logs
	DEBUG_FRAMES = false
	// DEBUG_EXECUTORS prints every executor stage
	DEBUG_EXECUTORS = false
)
