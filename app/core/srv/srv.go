package srv

import (
	"github.com/redis/go-redis/v9"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/queue"
)

type Srv struct {
	rbac         *RBACSrv
	redis        redis.UniversalClient
	journeyQueue *queue.JourneyQueue
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{
		rbac: SetupRBACSrv(), // 角色鉴权
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func ApplyRedis(client redis.UniversalClient) ApplyFunc {
	return func(s *Srv) {
		s.redis = client
	}
}

func (s *Srv) RBAC() *RBACSrv {
	return s.rbac
}

func (s *Srv) Redis() redis.UniversalClient {
	return s.redis
}

// SetJourneyQueue 由任务进程在建立 asynq 连接后注入
func (s *Srv) SetJourneyQueue(q *queue.JourneyQueue) {
	s.journeyQueue = q
}

func (s *Srv) JourneyQueue() *queue.JourneyQueue {
	return s.journeyQueue
}
