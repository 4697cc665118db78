package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	//auth - replace the token before deploying
	NoAuthBypass = true
	AuthToken    = ""

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	//IdleWorkerTimeout = 1 * time.Second //fo tests

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//upload
	MaxUploadSize int64 = 32 << 20 //32mb

	//summarizer
	SummaryStrategy      = "frequency" //or "textrank"
	MaxSummarySentences  = 5
	IdealSentenceTokens  = 24
	SummaryChunkLimit    = 8000 //chars - documents beyond this get chunk-summarized then re-summarized
	ShortDocumentMinimum = 200  //below this the job carries a scanned-document advisory

	//extractor caps
	KeyPointsTop     = 6
	RequirementsCap  = 10
	DeadlineLinesCap = 3
	NextStepsCap     = 5
	SkillLabelsCap   = 15

	//receipt sink
	SheetsSpreadsheetID = ""
	SheetsAppendRange   = "Receipts!A:G"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisReceiptStore = 1

	//redis timeouts
	RedisJobStoreTTL = 24 * time.Hour
)

// GetEnv returns the environment value for key, or fallback when unset.
func GetEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
