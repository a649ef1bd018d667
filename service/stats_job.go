package service

import (
	"context"
	"log"
	"strconv"
	"time"

	"google.golang.org/protobuf/proto"

	"respool/api/pb"
	"respool/infra/kafka"
)

// StartStatsJob periodically publishes pool statistics to the metrics
// topic and garbage-collects acked outbox records. Telemetry delivery
// is best-effort; a failed publish is skipped, not retried.
func (s *LeaseService) StartStatsJob(
	ctx context.Context,
	producer *kafka.Producer,
	interval time.Duration,
) {
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-t.C:
				st, active := s.Describe()

				payload, err := proto.Marshal(&pb.DescribeResponse{
					LocalCaches:      st.LocalCaches,
					FreeChunks:       st.FreeChunks,
					Groups:           st.Groups,
					Blocks:           st.Blocks,
					Items:            st.Items,
					FreeItems:        st.FreeItems,
					BlockItemCap:     st.BlockItemCap,
					FreeChunkItemCap: int64(st.FreeChunkItemCap),
					TotalBytes:       st.TotalBytes,
					ActiveLeases:     uint64(active),
				})
				if err != nil {
					continue
				}

				key := []byte(strconv.FormatUint(s.seqGen.Current(), 10))
				if err := producer.Send(ctx, key, payload); err != nil {
					log.Printf("[stats] publish failed: %v", err)
				}

				// GC the outbox behind the watermark.
				_ = s.box.TruncateAckedUpTo(s.seqGen.Current())
			}
		}
	}()
}
