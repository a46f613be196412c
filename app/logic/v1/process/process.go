package process

import (
	"github.com/hibiken/asynq"
	"github.com/robfig/cron/v3"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/queue"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/register"
)

type Process struct {
	cron        *cron.Cron
	core        *core.Core
	asynqClient *asynq.Client
	asynqServer *asynq.Server
	asynqMux    *asynq.ServeMux
}

var p *Process

type ProcessKey struct{}

func NewProcess(core *core.Core) *Process {
	p = &Process{
		cron: cron.New(),
		core: core,
	}

	cfg := core.Cfg().Redis

	var redisOpt asynq.RedisConnOpt
	if cfg.Cluster {
		redisOpt = asynq.RedisClusterClientOpt{
			Addrs:    cfg.ClusterAddrs,
			Password: cfg.ClusterPasswd,
		}
	} else {
		redisOpt = asynq.RedisClientOpt{
			Network:  "tcp",
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}
	p.asynqClient = asynq.NewClient(redisOpt)

	p.asynqServer = asynq.NewServer(redisOpt, asynq.Config{
		Concurrency:    5,
		StrictPriority: false,
		Queues: map[string]int{
			queue.JourneyQueueName: 5,
		},
	})

	p.asynqMux = asynq.NewServeMux()

	for _, h := range register.ResolveFuncHandlers[*Process](ProcessKey{}) {
		h(p)
	}

	return p
}

func (p *Process) Cron() *cron.Cron {
	return p.cron
}

func (p *Process) Core() *core.Core {
	return p.core
}

func (p *Process) AsynqClient() *asynq.Client {
	return p.asynqClient
}

func (p *Process) AsynqServerMux() *asynq.ServeMux {
	return p.asynqMux
}

func (p *Process) Start() {
	p.cron.Start()
	go p.asynqServer.Run(p.asynqMux)
}

func (p *Process) Stop() {
	if p.cron != nil {
		ctx := p.cron.Stop()
		<-ctx.Done()
	}

	if p.asynqServer != nil {
		p.asynqServer.Shutdown()
	}

	if p.asynqClient != nil {
		_ = p.asynqClient.Close()
	}
}
