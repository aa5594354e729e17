package controllers

// Common request/response types for HTTP controllers

// queueCreateReq represents a request to create a queue.
type queueCreateReq struct {
	Name string `json:"name"`
}

// enqueueReq represents a request to enqueue one job.
type enqueueReq struct {
	Queue  string            `json:"queue"`
	Key    string            `json:"key"`
	Fields map[string]string `json:"fields"`
}

// dequeueReq represents a request to pop the oldest job from a queue.
type dequeueReq struct {
	Queue string `json:"queue"`
}

// queueInfo describes one queue in responses.
type queueInfo struct {
	Name string `json:"name"`
}

// createResp confirms queue creation.
type createResp struct {
	Status string    `json:"status"`
	ID     string    `json:"id"`
	Queue  queueInfo `json:"queue"`
}

// enqueueResp confirms a stored job.
type enqueueResp struct {
	Status string `json:"status"`
	Queue  string `json:"queue"`
	Key    string `json:"key"`
}

// dequeueResp carries one popped job, or the empty/partial outcome.
type dequeueResp struct {
	Status  string            `json:"status"`
	Key     string            `json:"key,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Message string            `json:"message,omitempty"`
}
