package consumer

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/venuecraft/banquet-service/internal/engine"
	"github.com/venuecraft/banquet-service/internal/models"
	"github.com/venuecraft/banquet-service/internal/repository"
)

// PolicyConsumer keeps the local tenant policy read model in sync with
// writes published by the tenant-admin service.
type PolicyConsumer struct {
	policyRepo repository.PolicyRepository
}

func NewPolicyConsumer(policyRepo repository.PolicyRepository) *PolicyConsumer {
	return &PolicyConsumer{policyRepo: policyRepo}
}

func (pc *PolicyConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			pc.handleMessage(msg)
		}
		logrus.Info("policy consumer channel closed, stopping")
	}()
}

func (pc *PolicyConsumer) handleMessage(msg amqp.Delivery) {
	var policy models.TenantPolicy
	if err := json.Unmarshal(msg.Body, &policy); err != nil {
		logrus.WithError(err).Warn("failed to unmarshal tenant policy")
		msg.Nack(false, false)
		return
	}

	ctx := context.Background()

	// An older version than what we already hold means messages arrived
	// out of order; keep ours and warn.
	if current, err := pc.policyRepo.FindByTenant(ctx, policy.TenantID); err == nil {
		if warn := engine.CheckPolicyVersion(policy.TenantID, policy.Version, current.Version); warn != nil {
			logrus.WithFields(logrus.Fields{
				"tenant_id":    policy.TenantID,
				"seen_version": warn.SeenVersion,
				"want_version": warn.WantVersion,
			}).Warn("ignoring stale tenant policy update")
			msg.Ack(false)
			return
		}
	}

	if err := pc.policyRepo.Upsert(ctx, &policy); err != nil {
		logrus.WithError(err).WithField("tenant_id", policy.TenantID).Error("failed to upsert tenant policy")
		msg.Nack(false, true) // requeue
		return
	}

	logrus.WithFields(logrus.Fields{
		"tenant_id": policy.TenantID,
		"version":   policy.Version,
	}).Info("synced tenant policy")
	msg.Ack(false)
}
