package lambda_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	awss3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sorgente/datakit/pkg/dataset"
	"github.com/sorgente/datakit/pkg/dataset/lambda"
	"github.com/sorgente/datakit/pkg/observability/logger"
)

// objectStoreAPI is the slice of the S3 client the delegates rely on.
type objectStoreAPI interface {
	GetObject(ctx context.Context, in *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
}

type mockObjectStore struct {
	getObjectFn  func(context.Context, *awss3.GetObjectInput, ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	putObjectFn  func(context.Context, *awss3.PutObjectInput, ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	headObjectFn func(context.Context, *awss3.HeadObjectInput, ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
}

func (m *mockObjectStore) GetObject(ctx context.Context, in *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	if m.getObjectFn != nil {
		return m.getObjectFn(ctx, in, optFns...)
	}
	return nil, errors.New("unexpected get object")
}

func (m *mockObjectStore) PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	if m.putObjectFn != nil {
		return m.putObjectFn(ctx, in, optFns...)
	}
	return &awss3.PutObjectOutput{}, nil
}

func (m *mockObjectStore) HeadObject(ctx context.Context, in *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
	if m.headObjectFn != nil {
		return m.headObjectFn(ctx, in, optFns...)
	}
	return &awss3.HeadObjectOutput{}, nil
}

// objectDataset adapts one S3 object through function delegates, translating
// the SDK's typed not-found errors into the library's classification.
func objectDataset(client objectStoreAPI, bucket, key string) *lambda.Dataset[[]byte] {
	return lambda.New(lambda.Config[[]byte]{
		Load: func(ctx context.Context) ([]byte, error) {
			out, err := client.GetObject(ctx, &awss3.GetObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
			})
			if err != nil {
				var noSuchKey *awss3types.NoSuchKey
				if errors.As(err, &noSuchKey) {
					return nil, fmt.Errorf("%w: s3://%s/%s", dataset.ErrNotFound, bucket, key)
				}
				return nil, err
			}
			defer out.Body.Close()
			return io.ReadAll(out.Body)
		},
		Save: func(ctx context.Context, data []byte) error {
			_, err := client.PutObject(ctx, &awss3.PutObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
				Body:   bytes.NewReader(data),
			})
			return err
		},
		Exists: func(ctx context.Context) (bool, error) {
			_, err := client.HeadObject(ctx, &awss3.HeadObjectInput{
				Bucket: aws.String(bucket),
				Key:    aws.String(key),
			})
			if err != nil {
				var notFound *awss3types.NotFound
				if errors.As(err, &notFound) {
					return false, nil
				}
				return false, err
			}
			return true, nil
		},
		Metadata: map[string]any{"bucket": bucket, "key": key},
	}, logger.NewNop())
}

func TestObjectStoreDelegates_RoundTrip(t *testing.T) {
	objects := make(map[string][]byte)
	mock := &mockObjectStore{
		getObjectFn: func(ctx context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
			data, ok := objects[aws.ToString(in.Key)]
			if !ok {
				return nil, &awss3types.NoSuchKey{}
			}
			return &awss3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
		},
		putObjectFn: func(ctx context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
			data, err := io.ReadAll(in.Body)
			if err != nil {
				return nil, err
			}
			objects[aws.ToString(in.Key)] = data
			return &awss3.PutObjectOutput{}, nil
		},
		headObjectFn: func(ctx context.Context, in *awss3.HeadObjectInput, _ ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error) {
			if _, ok := objects[aws.ToString(in.Key)]; !ok {
				return nil, &awss3types.NotFound{}
			}
			return &awss3.HeadObjectOutput{}, nil
		},
	}

	ctx := context.Background()
	ds := objectDataset(mock, "datasets", "reviews/2024.json")

	ok, err := ds.Exists(ctx)
	if err != nil {
		t.Fatalf("unexpected exists error: %v", err)
	}
	if ok {
		t.Fatal("expected no object before the first save")
	}

	payload := []byte(`{"rating": 4.7}`)
	if err := ds.Save(ctx, payload); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	ok, err = ds.Exists(ctx)
	if err != nil {
		t.Fatalf("unexpected exists error: %v", err)
	}
	if !ok {
		t.Fatal("expected the object to exist after saving")
	}

	got, err := ds.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("expected %q back, got %q", payload, got)
	}
}

func TestObjectStoreDelegates_MissingObject(t *testing.T) {
	mock := &mockObjectStore{
		getObjectFn: func(ctx context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
			return nil, &awss3types.NoSuchKey{}
		},
	}
	ds := objectDataset(mock, "datasets", "reviews/2024.json")

	_, err := ds.Load(context.Background())
	if !dataset.IsNotFound(err) {
		t.Fatalf("expected a not-found classification for a missing object, got %v", err)
	}
}

func TestObjectStoreDelegates_BackendErrorPassesThrough(t *testing.T) {
	backendErr := errors.New("api error SlowDown: please reduce your request rate")
	mock := &mockObjectStore{
		getObjectFn: func(ctx context.Context, in *awss3.GetObjectInput, _ ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
			return nil, backendErr
		},
	}
	ds := objectDataset(mock, "datasets", "reviews/2024.json")

	if _, err := ds.Load(context.Background()); err != backendErr {
		t.Fatalf("expected the backend error unmodified, got %v", err)
	}
}
