// AWS S3 specific functions. Implements the objstore.ObjectStore interface.

package awss3

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/objectstores/s3shell/pkg/objstore"
)

type awsS3Store struct {
	client     *s3.S3
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
	// Region doubles as the location constraint for new buckets,
	// see configs/s3shell.yaml for an example
	region string
	log    objstore.Logger
}

func NewObjectStore(logger objstore.Logger, config *viper.Viper) (objstore.ObjectStore, error) {
	region := config.GetString("region")
	if region == "" {
		return nil, errors.New("No region in AWS S3 configuration")
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to initialize AWS session")
	}

	return &awsS3Store{
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
		region:     region,
		log:        logger,
	}, nil
}

// S3 reports a missing or inaccessible bucket as an HTTP-level request
// failure. 400, 403 and 404 all mean "not there as far as this client is
// concerned"; anything else is a real fault and goes back to the caller.
func (self *awsS3Store) BucketExists(name string) (bool, error) {
	_, err := self.client.HeadBucket(&s3.HeadBucketInput{
		Bucket: aws.String(name),
	})
	if err == nil {
		return true, nil
	}
	if probeSaysAbsent(err) {
		return false, nil
	}
	return false, err
}

func probeSaysAbsent(err error) bool {
	reqErr, ok := err.(awserr.RequestFailure)
	if !ok {
		return false
	}
	switch reqErr.StatusCode() {
	case 400, 403, 404:
		return true
	}
	return false
}

func (self *awsS3Store) CreateBucket(name string) error {
	_, err := self.client.CreateBucket(&s3.CreateBucketInput{
		Bucket: aws.String(name),
		CreateBucketConfiguration: &s3.CreateBucketConfiguration{
			LocationConstraint: aws.String(self.region),
		},
	})
	if err != nil {
		return errors.Wrap(err, "Failed to create bucket "+name)
	}
	self.log.Info("Created bucket: " + name)
	return nil
}

func (self *awsS3Store) ListBuckets() ([]string, error) {
	resp, err := self.client.ListBuckets(&s3.ListBucketsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list buckets")
	}
	names := make([]string, 0, len(resp.Buckets))
	for _, bucket := range resp.Buckets {
		names = append(names, aws.StringValue(bucket.Name))
	}
	return names, nil
}

func (self *awsS3Store) ListObjects(bucket string) ([]string, error) {
	resp, err := self.client.ListObjects(&s3.ListObjectsInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to list objects in bucket "+bucket)
	}
	keys := make([]string, 0, len(resp.Contents))
	for _, obj := range resp.Contents {
		keys = append(keys, aws.StringValue(obj.Key))
	}
	return keys, nil
}

func (self *awsS3Store) Upload(src string, bucket string, key string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "Failed to open source file "+src)
	}
	defer srcFile.Close()

	_, err = self.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   srcFile,
	})
	if err != nil {
		return errors.Wrapf(err, "Failed to upload %s to bucket %s", src, bucket)
	}
	self.log.Info("Uploaded " + src + " to " + bucket + "/" + key)
	return nil
}

func (self *awsS3Store) Download(bucket string, key string, dst string) error {
	dstFile, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "Failed to create local file "+dst)
	}
	defer dstFile.Close()

	_, err = self.downloader.Download(dstFile, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "Failed to download %s from bucket %s", key, bucket)
	}
	self.log.Info("Downloaded " + bucket + "/" + key + " to " + dst)
	return nil
}

func (self *awsS3Store) DeleteObject(bucket string, key string) error {
	_, err := self.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.Wrapf(err, "Failed to delete %s from bucket %s", key, bucket)
	}
	return nil
}

func (self *awsS3Store) DeleteBucket(bucket string) error {
	_, err := self.client.DeleteBucket(&s3.DeleteBucketInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return errors.Wrap(err, "Failed to delete bucket "+bucket)
	}
	self.log.Info("Deleted bucket: " + bucket)
	return nil
}

func (self *awsS3Store) Destroy() {
	// Nothing to clean up, the S3 client is stateless on our side.
}
