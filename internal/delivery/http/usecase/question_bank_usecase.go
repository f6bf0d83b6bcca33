package usecase

import (
	"context"

	"github.com/evandrarf/quizdrill/internal/delivery/http/entity"
	"github.com/evandrarf/quizdrill/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/quizdrill/internal/entity"
	"github.com/evandrarf/quizdrill/internal/practice"
	"github.com/sirupsen/logrus"
)

type QuestionBankUsecase interface {
	ListBanks(ctx context.Context) ([]entity.BankResponse, error)
	GetLastUsedBank(ctx context.Context) (*entity.BankResponse, error)
	SetLastUsedBank(ctx context.Context, bankID uint) error
	ListWrongQuestions(ctx context.Context, bankID uint) ([]entity.WrongQuestionResponse, error)
	RemoveWrongQuestion(ctx context.Context, bankID, questionID uint) error
	GetExamConfig(ctx context.Context) (entity.ExamCounts, error)
	UpdateExamConfig(ctx context.Context, req entity.ExamCounts) (entity.ExamCounts, error)
}

type QuestionBankConfig struct {
	Banks      repository.QuestionBankRepository
	Wrong      repository.WrongQuestionRepository
	ExamConfig repository.ConfigRepository
	Log        *logrus.Logger
}

type questionBankUsecase struct {
	cfg   QuestionBankConfig
	wrong *practice.WrongSet
}

func NewQuestionBankUsecase(cfg QuestionBankConfig) QuestionBankUsecase {
	return &questionBankUsecase{
		cfg:   cfg,
		wrong: practice.NewWrongSet(cfg.Wrong),
	}
}

func (u *questionBankUsecase) ListBanks(ctx context.Context) ([]entity.BankResponse, error) {
	banks, err := u.cfg.Banks.ListBanks(ctx)
	if err != nil {
		return nil, storeError("list banks", err, nil)
	}
	counts, err := u.cfg.Banks.CountByType(ctx)
	if err != nil {
		return nil, storeError("count questions", err, nil)
	}

	perBank := make(map[uint]*practice.ExamCounts, len(banks))
	for _, c := range counts {
		t, err := practice.ParseQuestionType(c.Type)
		if err != nil {
			continue
		}
		pc := perBank[c.BankID]
		if pc == nil {
			pc = &practice.ExamCounts{}
			perBank[c.BankID] = pc
		}
		switch t {
		case practice.TypeSingle:
			pc.Single += int(c.Count)
		case practice.TypeMultiple:
			pc.Multiple += int(c.Count)
		case practice.TypeJudge:
			pc.Judge += int(c.Count)
		}
	}

	res := make([]entity.BankResponse, 0, len(banks))
	for i := range banks {
		item := newBankResponse(&banks[i])
		if pc := perBank[banks[i].ID]; pc != nil {
			item.TypeCounts = entity.NewExamCounts(*pc)
			item.QuestionCount = pc.Total()
		}
		res = append(res, item)
	}
	return res, nil
}

func newBankResponse(bank *internalEntity.QuestionBank) entity.BankResponse {
	return entity.BankResponse{
		ID:          bank.ID,
		Name:        bank.Name,
		Description: bank.Description,
		IsLastUsed:  bank.IsLastUsed,
	}
}

func (u *questionBankUsecase) GetLastUsedBank(ctx context.Context) (*entity.BankResponse, error) {
	bank, err := u.cfg.Banks.FindLastUsed(ctx)
	if err != nil {
		return nil, storeError("last used bank", err, ErrBankNotFound)
	}
	res := newBankResponse(bank)
	return &res, nil
}

func (u *questionBankUsecase) SetLastUsedBank(ctx context.Context, bankID uint) error {
	if err := u.cfg.Banks.SetLastUsed(ctx, bankID); err != nil {
		return storeError("set last used bank", err, ErrBankNotFound)
	}
	u.cfg.Log.WithField("bank_id", bankID).Debug("last used bank updated")
	return nil
}

func (u *questionBankUsecase) ListWrongQuestions(ctx context.Context, bankID uint) ([]entity.WrongQuestionResponse, error) {
	if _, err := u.cfg.Banks.FindBank(ctx, bankID); err != nil {
		return nil, storeError("list wrong questions", err, ErrBankNotFound)
	}
	entries, err := u.wrong.List(ctx, bankID)
	if err != nil {
		return nil, err
	}
	res := make([]entity.WrongQuestionResponse, len(entries))
	for i, e := range entries {
		res[i] = entity.WrongQuestionResponse{
			Question:   entity.NewQuestionView(e.Question, true),
			UserAnswer: e.Answer,
			AddedAt:    e.AddedAt,
		}
	}
	return res, nil
}

func (u *questionBankUsecase) RemoveWrongQuestion(ctx context.Context, bankID, questionID uint) error {
	if err := u.wrong.Remove(ctx, bankID, questionID); err != nil {
		return err
	}
	u.cfg.Log.WithFields(logrus.Fields{"bank_id": bankID, "question_id": questionID}).Debug("removed from wrong set")
	return nil
}

func (u *questionBankUsecase) GetExamConfig(ctx context.Context) (entity.ExamCounts, error) {
	counts, err := u.cfg.ExamConfig.Get(ctx)
	if err != nil {
		return entity.ExamCounts{}, storeError("get exam config", err, nil)
	}
	return entity.NewExamCounts(counts), nil
}

func (u *questionBankUsecase) UpdateExamConfig(ctx context.Context, req entity.ExamCounts) (entity.ExamCounts, error) {
	if err := u.cfg.ExamConfig.Set(ctx, req.ToCore()); err != nil {
		return entity.ExamCounts{}, storeError("update exam config", err, nil)
	}
	return req, nil
}
