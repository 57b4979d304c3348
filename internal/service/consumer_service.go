// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pm-intel-be/internal/dto"
	"pm-intel-be/internal/repository/memory"
	"pm-intel-be/internal/repository/unitofwork"
	"pm-intel-be/pkg/enrichment"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	engine     *enrichment.Engine
	tokens     *memory.EnrichmentTokenRepository
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	engine *enrichment.Engine,
	tokens *memory.EnrichmentTokenRepository,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		engine:     engine,
		tokens:     tokens,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.EnrichmentJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil {
		log.Printf("[ERROR] Failed to unmarshal enrichment job: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	tokenKey := job.Kind + ":" + job.TargetId.String()
	if !cs.tokens.IsCurrent(tokenKey, job.Token) {
		log.Printf("[INFO] Enrichment job superseded, dropping (kind=%s target=%s)", job.Kind, job.TargetId)
		msg.Ack()
		return
	}

	log.Printf("[INFO] Processing enrichment job (kind=%s target=%s)", job.Kind, job.TargetId)

	var err error
	switch job.Kind {
	case dto.EnrichmentKindPrd:
		err = cs.applyPrd(ctx, job)
	case dto.EnrichmentKindRevenueImpact:
		err = cs.applyRevenueImpacts(ctx, job)
	case dto.EnrichmentKindSegment:
		err = cs.applySegmentProfile(ctx, job)
	case dto.EnrichmentKindOrganisation:
		err = cs.applyOrganisationProfile(ctx, job)
	default:
		log.Printf("[ERROR] Unknown enrichment kind %q", job.Kind)
		msg.Ack()
		return
	}

	if err != nil {
		log.Printf("[ERROR] Enrichment job failed (kind=%s target=%s): %v", job.Kind, job.TargetId, err)
		msg.Nack()
		return
	}

	cs.tokens.Clear(tokenKey, job.Token)
	log.Printf("[SUCCESS] Enrichment applied (kind=%s target=%s)", job.Kind, job.TargetId)
	msg.Ack()
}

func (cs *consumerService) applyPrd(ctx context.Context, job dto.EnrichmentJobMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindById(ctx, job.TargetId)
	if err != nil {
		return err
	}
	if feature == nil {
		// Feature deleted while the job was queued. Nothing to apply.
		log.Printf("[WARN] Feature %s gone, dropping PRD job", job.TargetId)
		return nil
	}

	prd, source, err := cs.engine.GeneratePrd(ctx, feature.Title, feature.Description)
	if err != nil {
		return err
	}

	// The slow AI call may have been superseded; check again before writing.
	if !cs.tokens.IsCurrent(job.Kind+":"+job.TargetId.String(), job.Token) {
		log.Printf("[INFO] PRD result stale for feature %s, discarding", job.TargetId)
		return nil
	}

	feature.Prd = prd
	feature.UpdatedAt = time.Now()
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return err
	}
	log.Printf("[INFO] PRD written for feature %s (source=%s)", job.TargetId, source)
	return nil
}

func (cs *consumerService) applyRevenueImpacts(ctx context.Context, job dto.EnrichmentJobMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAll(ctx)
	if err != nil {
		return err
	}

	inputs := make([]enrichment.FeatureInput, 0, len(features))
	for _, f := range features {
		inputs = append(inputs, enrichment.FeatureInput{
			Id:          f.Id.String(),
			Title:       f.Title,
			Description: f.Description,
		})
	}

	impacts, source, err := cs.engine.PredictRevenueImpact(ctx, inputs)
	if err != nil {
		return err
	}

	if !cs.tokens.IsCurrent(job.Kind+":"+job.TargetId.String(), job.Token) {
		log.Printf("[INFO] Revenue impact result stale, discarding")
		return nil
	}

	byId := make(map[string]int, len(features))
	for i, f := range features {
		byId[f.Id.String()] = i
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	updated := 0
	for _, impact := range impacts {
		idx, ok := byId[impact.FeatureId]
		if !ok {
			continue // model hallucinated an id
		}
		f := features[idx]
		applied := impact.Impact
		f.PredictedImpact = &applied
		f.UpdatedAt = time.Now()
		if err := uow.FeatureRepository().Update(ctx, f); err != nil {
			return err
		}
		updated++
	}

	if err := uow.Commit(); err != nil {
		return err
	}
	log.Printf("[INFO] Revenue impacts written for %d features (source=%s)", updated, source)
	return nil
}

func (cs *consumerService) applySegmentProfile(ctx context.Context, job dto.EnrichmentJobMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	segment, err := uow.CustomerSegmentRepository().FindById(ctx, job.TargetId)
	if err != nil {
		return err
	}
	if segment == nil {
		log.Printf("[WARN] Segment %s gone, dropping enrichment job", job.TargetId)
		return nil
	}

	profile, source, err := cs.engine.EnrichSegment(ctx, segment.Name, segment.Description)
	if err != nil {
		return err
	}

	if !cs.tokens.IsCurrent(job.Kind+":"+job.TargetId.String(), job.Token) {
		log.Printf("[INFO] Segment profile stale for %s, discarding", job.TargetId)
		return nil
	}

	segment.Firmographics = profile.Firmographics
	segment.BuyingRoles = profile.BuyingRoles
	segment.Jtbd = profile.Jtbd
	segment.PainPoints = profile.PainPoints
	segment.Stack = profile.Stack
	segment.Pricing = profile.Pricing
	segment.Scores = profile.Scores
	segment.UpdatedAt = time.Now()

	if err := uow.CustomerSegmentRepository().Update(ctx, segment); err != nil {
		return err
	}
	log.Printf("[INFO] Segment profile written for %s (source=%s)", job.TargetId, source)
	return nil
}

func (cs *consumerService) applyOrganisationProfile(ctx context.Context, job dto.EnrichmentJobMessage) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	org, err := uow.OrganisationRepository().FindById(ctx, job.TargetId)
	if err != nil {
		return err
	}
	if org == nil {
		log.Printf("[WARN] Organisation %s gone, dropping enrichment job", job.TargetId)
		return nil
	}

	profile, source, err := cs.engine.EnrichOrganisation(ctx, org.Name, org.PrimaryDomain)
	if err != nil {
		return err
	}

	if !cs.tokens.IsCurrent(job.Kind+":"+job.TargetId.String(), job.Token) {
		log.Printf("[INFO] Organisation profile stale for %s, discarding", job.TargetId)
		return nil
	}

	now := time.Now()
	org.Summary = profile.Summary
	if profile.Industry != "" {
		org.Industry = profile.Industry
	}
	org.Strategy = profile.Strategy
	org.BusinessModel = profile.BusinessModel
	org.ProductStrategy = profile.ProductStrategy
	org.Competitive = profile.Competitive
	org.Signals = profile.Signals
	org.News = profile.News
	org.LastEnrichedAt = &now
	org.UpdatedAt = now

	if err := uow.OrganisationRepository().Update(ctx, org); err != nil {
		return err
	}
	log.Printf("[INFO] Organisation profile written for %s (source=%s)", job.TargetId, source)
	return nil
}
