package v1

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/ck123cabz/template-genius-activation-sub001/app/core"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/errors"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/i18n"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/types"
	"github.com/ck123cabz/template-genius-activation-sub001/pkg/utils"
)

type OutcomeLogic struct {
	ctx  context.Context
	core *core.Core
	UserInfo
}

func NewOutcomeLogic(ctx context.Context, core *core.Core) *OutcomeLogic {
	l := &OutcomeLogic{
		ctx:      ctx,
		core:     core,
		UserInfo: SetupUserInfo(ctx, core),
	}

	return l
}

// MarkOutcome 记录客户旅程结果，旧记录归档，新记录成为当前状态
func (l *OutcomeLogic) MarkOutcome(clientID, status, note string) (*types.JourneyOutcome, error) {
	status = strings.ToLower(status)
	if !types.ValidOutcomeStatus(status) {
		return nil, errors.New("OutcomeLogic.MarkOutcome.status", i18n.ERROR_INVALID_OUTCOME_STATUS, nil).Code(http.StatusBadRequest)
	}

	appid, _ := InjectAppid(l.ctx)
	client, err := l.core.Store().ClientStore().GetClient(l.ctx, appid, clientID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("OutcomeLogic.MarkOutcome.ClientStore.GetClient", i18n.ERROR_INTERNAL, err)
	}
	if client == nil {
		return nil, errors.New("OutcomeLogic.MarkOutcome.client.nil", i18n.ERROR_CLIENT_NOT_FOUND, nil).Code(http.StatusNotFound)
	}

	storedNote := note
	if note != "" {
		raw, err := l.core.EncryptData([]byte(note))
		if err != nil {
			return nil, errors.New("OutcomeLogic.MarkOutcome.EncryptData", i18n.ERROR_INTERNAL, err)
		}
		storedNote = string(raw)
	}

	outcome := types.JourneyOutcome{
		ID:         utils.GenRandomID(),
		Appid:      appid,
		ClientID:   clientID,
		Status:     status,
		Note:       storedNote,
		RecorderID: l.GetUserInfo().User,
		IsCurrent:  true,
		RecordedAt: time.Now().Unix(),
	}

	err = l.core.Store().Transaction(l.ctx, func(ctx context.Context) error {
		if err := l.core.Store().JourneyOutcomeStore().ArchiveCurrent(ctx, appid, clientID); err != nil {
			return errors.New("OutcomeLogic.MarkOutcome.JourneyOutcomeStore.ArchiveCurrent", i18n.ERROR_INTERNAL, err)
		}
		if err := l.core.Store().JourneyOutcomeStore().Create(ctx, outcome); err != nil {
			return errors.New("OutcomeLogic.MarkOutcome.JourneyOutcomeStore.Create", i18n.ERROR_INTERNAL, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome.Note = note
	return &outcome, nil
}

// decryptNote 解密落库的备注。密钥未配置时为透传，
// 配置前写入的明文记录解密失败则原样返回
func (l *OutcomeLogic) decryptNote(note string) string {
	if note == "" {
		return note
	}
	raw, err := l.core.DecryptData([]byte(note))
	if err != nil {
		return note
	}
	return string(raw)
}

// GetCurrentOutcome 获取客户当前结果，没有记录时返回 pending 占位
func (l *OutcomeLogic) GetCurrentOutcome(clientID string) (*types.JourneyOutcome, error) {
	appid, _ := InjectAppid(l.ctx)

	outcome, err := l.core.Store().JourneyOutcomeStore().GetCurrent(l.ctx, appid, clientID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("OutcomeLogic.GetCurrentOutcome.JourneyOutcomeStore.GetCurrent", i18n.ERROR_INTERNAL, err)
	}

	if outcome == nil {
		return &types.JourneyOutcome{
			Appid:    appid,
			ClientID: clientID,
			Status:   types.OUTCOME_STATUS_PENDING,
		}, nil
	}

	outcome.Note = l.decryptNote(outcome.Note)
	return outcome, nil
}

// ListOutcomes 返回客户的结果历史，含已归档记录
func (l *OutcomeLogic) ListOutcomes(clientID string) ([]types.JourneyOutcome, error) {
	appid, _ := InjectAppid(l.ctx)

	list, err := l.core.Store().JourneyOutcomeStore().ListByClient(l.ctx, appid, clientID)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("OutcomeLogic.ListOutcomes.JourneyOutcomeStore.ListByClient", i18n.ERROR_INTERNAL, err)
	}

	for i := range list {
		list[i].Note = l.decryptNote(list[i].Note)
	}
	return list, nil
}

// ListNotes 分页返回所有填写了备注的结果记录
func (l *OutcomeLogic) ListNotes(page, pageSize uint64) ([]types.JourneyOutcome, error) {
	appid, _ := InjectAppid(l.ctx)

	list, err := l.core.Store().JourneyOutcomeStore().ListNotes(l.ctx, appid, page, pageSize)
	if err != nil && err != sql.ErrNoRows {
		return nil, errors.New("OutcomeLogic.ListNotes.JourneyOutcomeStore.ListNotes", i18n.ERROR_INTERNAL, err)
	}

	for i := range list {
		list[i].Note = l.decryptNote(list[i].Note)
	}
	return list, nil
}
