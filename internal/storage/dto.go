package storage

// UploadInput carries the fields accepted by the upload simulation.
type UploadInput struct {
	ImageName string `json:"image_name" validate:"required,max=255"`
	OrderID   int64  `json:"order_id" validate:"required,gt=0"`
}

// DeleteInput carries the object path to remove.
type DeleteInput struct {
	ImagePath string `json:"image_path" validate:"required,min=5"`
}

// UploadResult reports a simulated upload.
type UploadResult struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	URL       string `json:"s3_url"`
	ObjectKey string `json:"object_key"`
	Bucket    string `json:"bucket"`
	Region    string `json:"region"`
}

// ListResult reports the simulated image listing for one order.
type ListResult struct {
	Status      string   `json:"status"`
	Bucket      string   `json:"bucket"`
	Prefix      string   `json:"prefix"`
	TotalImages int      `json:"total_images"`
	Images      []string `json:"images"`
}

// DeleteResult reports a simulated deletion.
type DeleteResult struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	Bucket        string `json:"bucket"`
	DeletedObject string `json:"deleted_object"`
}

// BucketInfoResult describes the configured bucket.
type BucketInfoResult struct {
	Status     string `json:"status"`
	BucketName string `json:"bucket_name"`
	Region     string `json:"region"`
	Accessible bool   `json:"accessible"`
}
