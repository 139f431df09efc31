package main

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePutter struct {
	bucket      string
	key         string
	contentType string
	body        string
	err         error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = *params.Bucket
	f.key = *params.Key
	f.contentType = *params.ContentType
	body, _ := io.ReadAll(params.Body)
	f.body = string(body)
	return &s3.PutObjectOutput{}, nil
}

func TestBinaryStoreUpload(t *testing.T) {
	putter := &fakePutter{}
	store := &BinaryStore{
		client:    putter,
		bucket:    "portfolio-files",
		publicURL: "https://files.example.com",
	}

	url, err := store.Upload(context.Background(), "about/profile-123", "image/png", strings.NewReader("png bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://files.example.com/about/profile-123" {
		t.Errorf("url = %q", url)
	}
	if putter.bucket != "portfolio-files" || putter.key != "about/profile-123" {
		t.Errorf("put to %s/%s", putter.bucket, putter.key)
	}
	if putter.contentType != "image/png" {
		t.Errorf("content type = %q", putter.contentType)
	}
	if putter.body != "png bytes" {
		t.Errorf("body = %q", putter.body)
	}
}

func TestBinaryStoreUploadError(t *testing.T) {
	store := &BinaryStore{
		client:    &fakePutter{err: io.ErrUnexpectedEOF},
		bucket:    "b",
		publicURL: "https://files.example.com",
	}
	if _, err := store.Upload(context.Background(), "about/resume-1", "application/pdf", strings.NewReader("x")); err == nil {
		t.Error("expected upload error")
	}
}

func TestUploadPath(t *testing.T) {
	path := uploadPath("about", "profile")
	// <category>/<kind>-<millis>
	if !regexp.MustCompile(`^about/profile-\d{13}$`).MatchString(path) {
		t.Errorf("uploadPath = %q", path)
	}
}
