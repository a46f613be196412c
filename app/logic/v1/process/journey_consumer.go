package process

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/queue"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/register"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
)

func init() {
	register.RegisterFunc[*Process](ProcessKey{}, func(p *Process) {
		startJourneyConsumer(p)

		slog.Info("Journey event consumer started")
	})
}

// startJourneyConsumer 消费公开访问路径产生的行为事件并落库
func startJourneyConsumer(p *Process) {
	core := p.Core()

	client := p.AsynqClient()
	if client == nil {
		slog.Error("Asynq client not initialized")
		return
	}

	journeyQueue := queue.NewJourneyQueueWithClient(core.Cfg().Redis.KeyPrefix, client)
	// 给 HTTP 侧的逻辑层一个入队入口
	core.Srv().SetJourneyQueue(journeyQueue)

	journeyQueue.SetupHandler(p.AsynqServerMux(), func(ctx context.Context, task *asynq.Task) error {
		event, err := queue.ParseJourneyEventTask(task)
		if err != nil {
			slog.Error("Failed to parse journey event task", slog.String("error", err.Error()))
			return errors.Wrap(err, "process.journeyConsumer", "parse journey event task")
		}

		err = core.Store().JourneyEventStore().Create(ctx, types.JourneyEvent{
			Appid:     event.Appid,
			ClientID:  event.ClientID,
			PageType:  types.PageType(event.PageType),
			Kind:      event.Kind,
			CreatedAt: event.CreatedAt,
		})
		if err != nil {
			slog.Error("Failed to persist journey event",
				slog.String("client_id", event.ClientID),
				slog.String("page_type", event.PageType),
				slog.String("error", err.Error()))
			return err
		}

		return nil
	})
}
