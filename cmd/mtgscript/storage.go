package main

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/Backblaze/blazer/b2"
	"github.com/dsnet/compress/bzip2"
	"github.com/scizorman/go-ndjson"
	"github.com/ulikunitz/xz"
	xzReader "github.com/xi2/xz"
	"google.golang.org/api/option"

	"github.com/mtgban/go-mtgscript/cardscript"
	"github.com/mtgban/go-mtgscript/mtgjson"
)

var GCSBucket *storage.BucketHandle
var B2Bucket *b2.Bucket

func initializeBucket(ctx context.Context, outputPath string) error {
	u, err := url.Parse(outputPath)
	if err != nil {
		return err
	}

	switch u.Scheme {
	case "http", "https":
		// nothing to do here
	case "gs":
		if GCSBucket != nil {
			return nil
		}

		serviceAcc := os.Getenv("GCS_SVC_ACC")
		if serviceAcc == "" {
			return errors.New("missing GCS_SVC_ACC for GCS access")
		}

		client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAcc))
		if err != nil {
			return fmt.Errorf("error creating the GCS client %w", err)
		}

		GCSBucket = client.Bucket(u.Host)
	case "b2":
		if B2Bucket != nil {
			return nil
		}

		accessKey := os.Getenv("B2_KEY_ID")
		secretKey := os.Getenv("B2_APP_KEY")
		if accessKey == "" || secretKey == "" {
			return errors.New("missing required B2 environment variables")
		}

		client, err := b2.NewClient(ctx, accessKey, secretKey)
		if err != nil {
			return err
		}

		B2Bucket, err = client.Bucket(ctx, u.Host)
		if err != nil {
			return err
		}
	default:
		_, err := os.Stat(u.Path)
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: path does not exist", u.Path)
		}
	}

	return nil
}

// Create suffix under outputPath, on whichever provider outputPath lives.
func putData(ctx context.Context, suffix, outputPath string) (io.WriteCloser, error) {
	filePath := fmt.Sprintf("%s/%s", strings.TrimSuffix(outputPath, "/"), suffix)

	var writer io.WriteCloser
	u, err := url.Parse(filePath)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "gs":
		if GCSBucket == nil {
			return nil, errors.New("GCS bucket not initialized")
		}
		dst := strings.TrimPrefix(u.Path, "/")
		writer = GCSBucket.Object(dst).NewWriter(ctx)
	case "b2":
		if B2Bucket == nil {
			return nil, errors.New("B2 bucket not initialized")
		}
		dst := strings.TrimPrefix(u.Path, "/")
		writer = B2Bucket.Object(dst).NewWriter(ctx)
	default:
		err := os.MkdirAll(filepath.Dir(filePath), 0755)
		if err != nil {
			return nil, err
		}
		file, err := os.Create(filePath)
		if err != nil {
			return nil, err
		}
		writer = file
	}

	return writer, nil
}

// stackedReader closes every layer of a decompression chain.
type stackedReader struct {
	io.Reader
	closers []io.Closer
}

func (sr *stackedReader) Close() error {
	var errs []error
	for i := len(sr.closers) - 1; i >= 0; i-- {
		err := sr.closers[i].Close()
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Open pathOpt, from a remote or local source, decompressing it according
// to its extension.
func loadData(ctx context.Context, pathOpt string) (io.ReadCloser, error) {
	var reader io.ReadCloser

	u, err := url.Parse(pathOpt)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		reader, err = mtgjson.NewClient().Open(ctx, pathOpt)
		if err != nil {
			return nil, err
		}
	case "b2":
		if B2Bucket == nil {
			return nil, errors.New("B2 bucket not initialized")
		}
		src := strings.TrimPrefix(u.Path, "/")
		obj := B2Bucket.Object(src).NewReader(ctx)
		obj.ConcurrentDownloads = 20

		reader = obj
	case "gs":
		if GCSBucket == nil {
			return nil, errors.New("GCS bucket not initialized")
		}
		src := strings.TrimPrefix(u.Path, "/")
		reader, err = GCSBucket.Object(src).NewReader(ctx)
		if err != nil {
			return nil, err
		}
	default:
		file, err := os.Open(pathOpt)
		if err != nil {
			return nil, err
		}

		reader = file
	}

	stack := &stackedReader{
		Reader:  reader,
		closers: []io.Closer{reader},
	}

	if strings.HasSuffix(pathOpt, "xz") {
		xzReader, err := xzReader.NewReader(reader, 0)
		if err != nil {
			reader.Close()
			return nil, err
		}
		stack.Reader = xzReader
	} else if strings.HasSuffix(pathOpt, "bz2") {
		bz2Reader, err := bzip2.NewReader(reader, nil)
		if err != nil {
			reader.Close()
			return nil, err
		}
		stack.Reader = bz2Reader
		stack.closers = append(stack.closers, bz2Reader)
	} else if strings.HasSuffix(pathOpt, "gz") {
		zipReader, err := gzip.NewReader(reader)
		if err != nil {
			reader.Close()
			return nil, err
		}
		stack.Reader = zipReader
		stack.closers = append(stack.closers, zipReader)
	}

	return stack, nil
}

func loadFeed(ctx context.Context, pathOpt string) (mtgjson.Feed, error) {
	reader, err := loadData(ctx, pathOpt)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return mtgjson.LoadAllSetsFromReader(reader)
}

func loadMissingList(ctx context.Context, pathOpt string) ([]string, error) {
	reader, err := loadData(ctx, pathOpt)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return cardscript.ReadMissingList(reader)
}

// Wrap writer with the compression named by the format extension.
func compressed(writer io.Writer, format string, fn func(w io.Writer) error) error {
	if strings.HasSuffix(format, ".xz") {
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return err
		}
		err = fn(xzWriter)
		if err != nil {
			xzWriter.Close()
			return err
		}
		return xzWriter.Close()
	} else if strings.HasSuffix(format, ".bz2") {
		bz2Writer, err := bzip2.NewWriter(writer, nil)
		if err != nil {
			return err
		}
		err = fn(bz2Writer)
		if err != nil {
			bz2Writer.Close()
			return err
		}
		return bz2Writer.Close()
	}
	return fn(writer)
}

func writeNDJSON[T any](ctx context.Context, items []T, suffix, outputPath, format string) error {
	writer, err := putData(ctx, suffix, outputPath)
	if err != nil {
		return err
	}

	err = compressed(writer, format, func(w io.Writer) error {
		if len(items) == 0 {
			return nil
		}
		output, err := ndjson.Marshal(items)
		if err != nil {
			return err
		}
		_, err = w.Write(output)
		return err
	})
	if err != nil {
		writer.Close()
		return err
	}
	return writer.Close()
}

func dumpScripts(ctx context.Context, cards []*cardscript.Card, outputPath string) error {
	for _, card := range cards {
		writer, err := putData(ctx, "scripts/"+card.Filename, outputPath)
		if err != nil {
			return err
		}
		err = cardscript.WriteScript(writer, card)
		if err != nil {
			writer.Close()
			return fmt.Errorf("%s: %w", card.Name, err)
		}
		err = writer.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", card.Name, err)
		}
	}
	return nil
}

func dumpCards(ctx context.Context, cards []*cardscript.Card, outputPath, format string) error {
	flat := make([]cardscript.Card, 0, len(cards))
	for _, card := range cards {
		flat = append(flat, *card)
	}
	return writeNDJSON(ctx, flat, "cards."+format, outputPath, format)
}

func dumpLedger(ctx context.Context, ledger *cardscript.Ledger, outputPath string) error {
	return writeNDJSON(ctx, ledger.Entries(), "ledger.ndjson", outputPath, "ndjson")
}

func dumpOrphans(ctx context.Context, orphans []string, outputPath string) error {
	writer, err := putData(ctx, "MissingCardOrphans.txt", outputPath)
	if err != nil {
		return err
	}
	for _, name := range orphans {
		_, err = fmt.Fprintln(writer, name)
		if err != nil {
			writer.Close()
			return err
		}
	}
	return writer.Close()
}
