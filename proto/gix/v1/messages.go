// Package v1 holds the gix.v1 RPC message and service definitions shared by
// the three daemons and their clients. The types are maintained by hand
// against gix.proto in this directory; the protobuf runtime derives wire
// descriptors from the struct tags.
package v1

import (
	"github.com/golang/protobuf/proto"
)

// ExecutionStatus mirrors the gix.v1.ExecutionStatus enum.
type ExecutionStatus int32

const (
	ExecutionStatus_COMPLETED ExecutionStatus = 0
	ExecutionStatus_FAILED    ExecutionStatus = 1
	ExecutionStatus_REJECTED  ExecutionStatus = 2
)

func (s ExecutionStatus) String() string {
	switch s {
	case ExecutionStatus_COMPLETED:
		return "COMPLETED"
	case ExecutionStatus_FAILED:
		return "FAILED"
	case ExecutionStatus_REJECTED:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// RouteEnvelopeRequest carries JSON-encoded GXF envelope bytes to the router.
type RouteEnvelopeRequest struct {
	EnvelopeData []byte `protobuf:"bytes,1,opt,name=envelope_data,json=envelopeData,proto3" json:"envelope_data,omitempty"`
}

func (m *RouteEnvelopeRequest) Reset()         { *m = RouteEnvelopeRequest{} }
func (m *RouteEnvelopeRequest) String() string { return proto.CompactTextString(m) }
func (*RouteEnvelopeRequest) ProtoMessage()    {}

// GetEnvelopeData returns the envelope bytes.
func (m *RouteEnvelopeRequest) GetEnvelopeData() []byte {
	if m != nil {
		return m.EnvelopeData
	}
	return nil
}

// RouteEnvelopeResponse reports the lane chosen for an envelope.
type RouteEnvelopeResponse struct {
	LaneId  uint32 `protobuf:"varint,1,opt,name=lane_id,json=laneId,proto3" json:"lane_id,omitempty"`
	Success bool   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Error   string `protobuf:"bytes,3,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *RouteEnvelopeResponse) Reset()         { *m = RouteEnvelopeResponse{} }
func (m *RouteEnvelopeResponse) String() string { return proto.CompactTextString(m) }
func (*RouteEnvelopeResponse) ProtoMessage()    {}

// GetLaneId returns the chosen lane.
func (m *RouteEnvelopeResponse) GetLaneId() uint32 {
	if m != nil {
		return m.LaneId
	}
	return 0
}

// GetSuccess reports whether routing succeeded.
func (m *RouteEnvelopeResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

// GetError returns the failure message, empty on success.
func (m *RouteEnvelopeResponse) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

// RouterStatsRequest asks the router for its counters.
type RouterStatsRequest struct{}

func (m *RouterStatsRequest) Reset()         { *m = RouterStatsRequest{} }
func (m *RouterStatsRequest) String() string { return proto.CompactTextString(m) }
func (*RouterStatsRequest) ProtoMessage()    {}

// RouterStatsResponse carries the router counters.
type RouterStatsResponse struct {
	TotalRouted uint64            `protobuf:"varint,1,opt,name=total_routed,json=totalRouted,proto3" json:"total_routed,omitempty"`
	LaneStats   map[uint32]uint64 `protobuf:"bytes,2,rep,name=lane_stats,json=laneStats,proto3" json:"lane_stats,omitempty" protobuf_key:"varint,1,opt,name=key,proto3" protobuf_val:"varint,2,opt,name=value,proto3"`
}

func (m *RouterStatsResponse) Reset()         { *m = RouterStatsResponse{} }
func (m *RouterStatsResponse) String() string { return proto.CompactTextString(m) }
func (*RouterStatsResponse) ProtoMessage()    {}

// GetTotalRouted returns the number of envelopes admitted.
func (m *RouterStatsResponse) GetTotalRouted() uint64 {
	if m != nil {
		return m.TotalRouted
	}
	return 0
}

// GetLaneStats returns the per-lane admittance counters.
func (m *RouterStatsResponse) GetLaneStats() map[uint32]uint64 {
	if m != nil {
		return m.LaneStats
	}
	return nil
}

// RunAuctionRequest carries JSON-encoded GXF job bytes and a priority.
type RunAuctionRequest struct {
	JobData  []byte `protobuf:"bytes,1,opt,name=job_data,json=jobData,proto3" json:"job_data,omitempty"`
	Priority uint32 `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
}

func (m *RunAuctionRequest) Reset()         { *m = RunAuctionRequest{} }
func (m *RunAuctionRequest) String() string { return proto.CompactTextString(m) }
func (*RunAuctionRequest) ProtoMessage()    {}

// GetJobData returns the job bytes.
func (m *RunAuctionRequest) GetJobData() []byte {
	if m != nil {
		return m.JobData
	}
	return nil
}

// GetPriority returns the submitted priority.
func (m *RunAuctionRequest) GetPriority() uint32 {
	if m != nil {
		return m.Priority
	}
	return 0
}

// RunAuctionResponse reports the match produced by one auction.
type RunAuctionResponse struct {
	JobId   []byte   `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	SlpId   string   `protobuf:"bytes,2,opt,name=slp_id,json=slpId,proto3" json:"slp_id,omitempty"`
	LaneId  uint32   `protobuf:"varint,3,opt,name=lane_id,json=laneId,proto3" json:"lane_id,omitempty"`
	Price   uint64   `protobuf:"varint,4,opt,name=price,proto3" json:"price,omitempty"`
	Route   []string `protobuf:"bytes,5,rep,name=route,proto3" json:"route,omitempty"`
	Success bool     `protobuf:"varint,6,opt,name=success,proto3" json:"success,omitempty"`
	Error   string   `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *RunAuctionResponse) Reset()         { *m = RunAuctionResponse{} }
func (m *RunAuctionResponse) String() string { return proto.CompactTextString(m) }
func (*RunAuctionResponse) ProtoMessage()    {}

// GetJobId returns the matched job id bytes.
func (m *RunAuctionResponse) GetJobId() []byte {
	if m != nil {
		return m.JobId
	}
	return nil
}

// GetSlpId returns the matched provider identity.
func (m *RunAuctionResponse) GetSlpId() string {
	if m != nil {
		return m.SlpId
	}
	return ""
}

// GetLaneId returns the lane of the chosen route.
func (m *RunAuctionResponse) GetLaneId() uint32 {
	if m != nil {
		return m.LaneId
	}
	return 0
}

// GetPrice returns the final price in micro-tokens.
func (m *RunAuctionResponse) GetPrice() uint64 {
	if m != nil {
		return m.Price
	}
	return 0
}

// GetRoute returns the node path of the chosen route.
func (m *RunAuctionResponse) GetRoute() []string {
	if m != nil {
		return m.Route
	}
	return nil
}

// GetSuccess reports whether the auction matched.
func (m *RunAuctionResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

// GetError returns the failure message, empty on success.
func (m *RunAuctionResponse) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

// AuctionStatsRequest asks the auction engine for its counters.
type AuctionStatsRequest struct{}

func (m *AuctionStatsRequest) Reset()         { *m = AuctionStatsRequest{} }
func (m *AuctionStatsRequest) String() string { return proto.CompactTextString(m) }
func (*AuctionStatsRequest) ProtoMessage()    {}

// AuctionStatsResponse carries the durable auction counters.
type AuctionStatsResponse struct {
	TotalAuctions      uint64            `protobuf:"varint,1,opt,name=total_auctions,json=totalAuctions,proto3" json:"total_auctions,omitempty"`
	TotalMatches       uint64            `protobuf:"varint,2,opt,name=total_matches,json=totalMatches,proto3" json:"total_matches,omitempty"`
	TotalUnmatched     uint64            `protobuf:"varint,3,opt,name=total_unmatched,json=totalUnmatched,proto3" json:"total_unmatched,omitempty"`
	TotalVolume        uint64            `protobuf:"varint,4,opt,name=total_volume,json=totalVolume,proto3" json:"total_volume,omitempty"`
	MatchesByPrecision map[string]uint64 `protobuf:"bytes,5,rep,name=matches_by_precision,json=matchesByPrecision,proto3" json:"matches_by_precision,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"varint,2,opt,name=value,proto3"`
	MatchesByLane      map[uint32]uint64 `protobuf:"bytes,6,rep,name=matches_by_lane,json=matchesByLane,proto3" json:"matches_by_lane,omitempty" protobuf_key:"varint,1,opt,name=key,proto3" protobuf_val:"varint,2,opt,name=value,proto3"`
}

func (m *AuctionStatsResponse) Reset()         { *m = AuctionStatsResponse{} }
func (m *AuctionStatsResponse) String() string { return proto.CompactTextString(m) }
func (*AuctionStatsResponse) ProtoMessage()    {}

// GetTotalAuctions returns the total auction attempts.
func (m *AuctionStatsResponse) GetTotalAuctions() uint64 {
	if m != nil {
		return m.TotalAuctions
	}
	return 0
}

// GetTotalMatches returns the total successful matches.
func (m *AuctionStatsResponse) GetTotalMatches() uint64 {
	if m != nil {
		return m.TotalMatches
	}
	return 0
}

// GetTotalUnmatched returns the total auctions with no capable provider.
func (m *AuctionStatsResponse) GetTotalUnmatched() uint64 {
	if m != nil {
		return m.TotalUnmatched
	}
	return 0
}

// GetTotalVolume returns the cumulative matched volume in micro-tokens.
func (m *AuctionStatsResponse) GetTotalVolume() uint64 {
	if m != nil {
		return m.TotalVolume
	}
	return 0
}

// GetMatchesByPrecision returns matches keyed by precision tag.
func (m *AuctionStatsResponse) GetMatchesByPrecision() map[string]uint64 {
	if m != nil {
		return m.MatchesByPrecision
	}
	return nil
}

// GetMatchesByLane returns matches keyed by lane id.
func (m *AuctionStatsResponse) GetMatchesByLane() map[uint32]uint64 {
	if m != nil {
		return m.MatchesByLane
	}
	return nil
}

// ExecuteJobRequest carries JSON-encoded GXF envelope bytes to the runtime.
type ExecuteJobRequest struct {
	EnvelopeData []byte `protobuf:"bytes,1,opt,name=envelope_data,json=envelopeData,proto3" json:"envelope_data,omitempty"`
}

func (m *ExecuteJobRequest) Reset()         { *m = ExecuteJobRequest{} }
func (m *ExecuteJobRequest) String() string { return proto.CompactTextString(m) }
func (*ExecuteJobRequest) ProtoMessage()    {}

// GetEnvelopeData returns the envelope bytes.
func (m *ExecuteJobRequest) GetEnvelopeData() []byte {
	if m != nil {
		return m.EnvelopeData
	}
	return nil
}

// ExecuteJobResponse reports the outcome of one execution.
type ExecuteJobResponse struct {
	JobId      []byte          `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status     ExecutionStatus `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	DurationMs uint64          `protobuf:"varint,3,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	OutputHash []byte          `protobuf:"bytes,4,opt,name=output_hash,json=outputHash,proto3" json:"output_hash,omitempty"`
	Success    bool            `protobuf:"varint,5,opt,name=success,proto3" json:"success,omitempty"`
	Error      string          `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *ExecuteJobResponse) Reset()         { *m = ExecuteJobResponse{} }
func (m *ExecuteJobResponse) String() string { return proto.CompactTextString(m) }
func (*ExecuteJobResponse) ProtoMessage()    {}

// GetJobId returns the executed job id bytes.
func (m *ExecuteJobResponse) GetJobId() []byte {
	if m != nil {
		return m.JobId
	}
	return nil
}

// GetStatus returns the execution status.
func (m *ExecuteJobResponse) GetStatus() ExecutionStatus {
	if m != nil {
		return m.Status
	}
	return ExecutionStatus_COMPLETED
}

// GetDurationMs returns the simulated execution duration.
func (m *ExecuteJobResponse) GetDurationMs() uint64 {
	if m != nil {
		return m.DurationMs
	}
	return 0
}

// GetOutputHash returns the 32-byte output digest.
func (m *ExecuteJobResponse) GetOutputHash() []byte {
	if m != nil {
		return m.OutputHash
	}
	return nil
}

// GetSuccess reports whether execution completed.
func (m *ExecuteJobResponse) GetSuccess() bool {
	if m != nil {
		return m.Success
	}
	return false
}

// GetError returns the failure message, empty on success.
func (m *ExecuteJobResponse) GetError() string {
	if m != nil {
		return m.Error
	}
	return ""
}

// RuntimeStatsRequest asks the runtime for its counters.
type RuntimeStatsRequest struct{}

func (m *RuntimeStatsRequest) Reset()         { *m = RuntimeStatsRequest{} }
func (m *RuntimeStatsRequest) String() string { return proto.CompactTextString(m) }
func (*RuntimeStatsRequest) ProtoMessage()    {}

// RuntimeStatsResponse carries the runtime execution counters.
type RuntimeStatsResponse struct {
	TotalExecuted   uint64            `protobuf:"varint,1,opt,name=total_executed,json=totalExecuted,proto3" json:"total_executed,omitempty"`
	TotalCompleted  uint64            `protobuf:"varint,2,opt,name=total_completed,json=totalCompleted,proto3" json:"total_completed,omitempty"`
	TotalFailed     uint64            `protobuf:"varint,3,opt,name=total_failed,json=totalFailed,proto3" json:"total_failed,omitempty"`
	TotalRejected   uint64            `protobuf:"varint,4,opt,name=total_rejected,json=totalRejected,proto3" json:"total_rejected,omitempty"`
	JobsByPrecision map[string]uint64 `protobuf:"bytes,5,rep,name=jobs_by_precision,json=jobsByPrecision,proto3" json:"jobs_by_precision,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"varint,2,opt,name=value,proto3"`
}

func (m *RuntimeStatsResponse) Reset()         { *m = RuntimeStatsResponse{} }
func (m *RuntimeStatsResponse) String() string { return proto.CompactTextString(m) }
func (*RuntimeStatsResponse) ProtoMessage()    {}

// GetTotalExecuted returns the number of jobs admitted to execution.
func (m *RuntimeStatsResponse) GetTotalExecuted() uint64 {
	if m != nil {
		return m.TotalExecuted
	}
	return 0
}

// GetTotalCompleted returns the number of jobs completed.
func (m *RuntimeStatsResponse) GetTotalCompleted() uint64 {
	if m != nil {
		return m.TotalCompleted
	}
	return 0
}

// GetTotalFailed returns the number of jobs failed mid-execution.
func (m *RuntimeStatsResponse) GetTotalFailed() uint64 {
	if m != nil {
		return m.TotalFailed
	}
	return 0
}

// GetTotalRejected returns the number of jobs rejected by policy.
func (m *RuntimeStatsResponse) GetTotalRejected() uint64 {
	if m != nil {
		return m.TotalRejected
	}
	return 0
}

// GetJobsByPrecision returns executed jobs keyed by precision tag.
func (m *RuntimeStatsResponse) GetJobsByPrecision() map[string]uint64 {
	if m != nil {
		return m.JobsByPrecision
	}
	return nil
}
