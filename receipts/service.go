package receipts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"encore.dev/config"
	"encore.dev/rlog"
	"encore.dev/storage/objects"
	"encore.dev/storage/sqldb"

	"encore.app/receipts/business/receipt"
	"encore.app/receipts/domain"
	"encore.app/receipts/extraction"
	"encore.app/receipts/repository"
	"encore.app/receipts/signing"
	"encore.app/receipts/workflow"

	"encore.app/receipts/viewcache"
)

var receiptsDB = sqldb.NewDatabase("receipts", sqldb.DatabaseConfig{
	Migrations: "./db/migrations",
})

// receiptImages holds the original uploaded images; processing reads them
// back by storage key.
var receiptImages = objects.NewBucket("receipt-images", objects.BucketConfig{})

type Config struct {
	TemporalHostPort  config.String
	ExtractionBaseURL config.String
	SigningBaseURL    config.String

	// ProcessingDeadlineMinutes bounds how long the pipeline may run per receipt.
	ProcessingDeadlineMinutes config.Int
}

var cfg *Config = config.Load[*Config]()

var secrets struct {
	SigningToken string // bearer token for the signed-URL endpoint
}

const taskQueue = "receipt-pipeline"

var validate = validator.New()

//encore:service
type Service struct {
	business receipt.Business
	temporal client.Client
	worker   worker.Worker

	viewCache  *viewcache.Store
	thumbnails *viewcache.BackoffGuard
	signer     signing.Client
	assets     *http.Client
}

func initService() (*Service, error) {
	pgxdb := sqldb.Driver(receiptsDB)

	repo := repository.NewRepository(pgxdb)
	stateMachine := domain.NewReceiptStateMachine(pgxdb, repo.Receipts)
	extractor := extraction.NewHTTPClient(cfg.ExtractionBaseURL(), 60*time.Second)
	images := &bucketImageStore{bucket: receiptImages}

	business := receipt.NewReceiptBusiness(repo.Receipts, stateMachine, extractor, images)
	workflow.SetActivityDependencies(business)

	temporalClient, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHostPort(),
	})
	if err != nil {
		return nil, fmt.Errorf("dial temporal: %w", err)
	}

	w := worker.New(temporalClient, taskQueue, worker.Options{})
	w.RegisterWorkflow(workflow.ReceiptPipeline)
	w.RegisterActivity(workflow.StartProcessingActivity)
	w.RegisterActivity(workflow.ExtractReceiptActivity)
	w.RegisterActivity(workflow.AuditReceiptActivity)
	w.RegisterActivity(workflow.FailReceiptActivity)
	w.RegisterActivity(workflow.CancelReceiptActivity)
	if err := w.Start(); err != nil {
		temporalClient.Close()
		return nil, fmt.Errorf("start temporal worker: %w", err)
	}

	rlog.Info("receipts service initialized", "task_queue", taskQueue)

	return &Service{
		business:   business,
		temporal:   temporalClient,
		worker:     w,
		viewCache:  viewcache.NewStore(),
		thumbnails: viewcache.NewBackoffGuard(),
		signer:     signing.NewHTTPClient(cfg.SigningBaseURL(), secrets.SigningToken, 10*time.Second),
		assets:     &http.Client{Timeout: 20 * time.Second},
	}, nil
}

func (s *Service) Shutdown(force context.Context) {
	if s.worker != nil {
		s.worker.Stop()
	}
	if s.temporal != nil {
		s.temporal.Close()
	}
}

// bucketImageStore adapts the Encore bucket to the business layer's reader.
type bucketImageStore struct {
	bucket *objects.Bucket
}

func (b *bucketImageStore) Download(ctx context.Context, key string) ([]byte, error) {
	reader := b.bucket.Download(ctx, key)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", key, err)
	}
	return data, nil
}
