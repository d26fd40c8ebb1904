// Package route53dns implements the dnstheory Provider against AWS Route 53.
package route53dns

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/aws/smithy-go"

	"github.com/theory-cloud/dnstheory"
)

type route53API interface {
	ListResourceRecordSets(
		ctx context.Context,
		params *route53.ListResourceRecordSetsInput,
		optFns ...func(*route53.Options),
	) (*route53.ListResourceRecordSetsOutput, error)
	ChangeResourceRecordSets(
		ctx context.Context,
		params *route53.ChangeResourceRecordSetsInput,
		optFns ...func(*route53.Options),
	) (*route53.ChangeResourceRecordSetsOutput, error)
}

// Provider talks to Route 53. The zero value is not usable; use New.
type Provider struct {
	client route53API
}

var _ dnstheory.Provider = (*Provider)(nil)

func New(client route53API) *Provider {
	return &Provider{client: client}
}

// NewFromClient wraps a concrete SDK client.
func NewFromClient(client *route53.Client) *Provider {
	return New(client)
}

// GetRecord returns the record's current value, or ErrRecordNotFound when
// the record set does not exist in the zone.
func (p *Provider) GetRecord(ctx context.Context, target dnstheory.RecordTarget) (string, error) {
	if p == nil || p.client == nil {
		return "", errors.New("route53dns: nil client")
	}

	out, err := p.client.ListResourceRecordSets(ctx, &route53.ListResourceRecordSetsInput{
		HostedZoneId:    aws.String(target.ZoneID),
		StartRecordName: aws.String(target.Name),
		StartRecordType: types.RRType(target.Type),
		MaxItems:        aws.Int32(1),
	})
	if err != nil {
		return "", wrapAPIError("list record sets", err)
	}

	if len(out.ResourceRecordSets) == 0 {
		return "", dnstheory.ErrRecordNotFound
	}
	rrset := out.ResourceRecordSets[0]
	// ListResourceRecordSets starts at the requested name; a different name
	// or type back means the requested record set does not exist.
	if !nameEqual(aws.ToString(rrset.Name), target.Name) || string(rrset.Type) != target.Type {
		return "", dnstheory.ErrRecordNotFound
	}
	if len(rrset.ResourceRecords) == 0 {
		return "", dnstheory.ErrRecordNotFound
	}
	return aws.ToString(rrset.ResourceRecords[0].Value), nil
}

// UpsertRecord issues a single atomic UPSERT change and waits for Route 53
// to accept the change request. It does not wait for propagation.
func (p *Provider) UpsertRecord(ctx context.Context, target dnstheory.RecordTarget, value string) error {
	if p == nil || p.client == nil {
		return errors.New("route53dns: nil client")
	}

	_, err := p.client.ChangeResourceRecordSets(ctx, &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(target.ZoneID),
		ChangeBatch: &types.ChangeBatch{
			Comment: aws.String("dnstheory updater"),
			Changes: []types.Change{
				{
					Action: types.ChangeActionUpsert,
					ResourceRecordSet: &types.ResourceRecordSet{
						Name: aws.String(target.Name),
						Type: types.RRType(target.Type),
						TTL:  aws.Int64(target.TTLSeconds),
						ResourceRecords: []types.ResourceRecord{
							{Value: aws.String(value)},
						},
					},
				},
			},
		},
	})
	if err != nil {
		return wrapAPIError("change record sets", err)
	}
	return nil
}

// nameEqual compares record names ignoring the FQDN trailing dot and the
// escaping-insensitive case Route 53 applies to names.
func nameEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSuffix(a, "."), strings.TrimSuffix(b, "."))
}

func wrapAPIError(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("route53 %s: %s: %s", op, apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return fmt.Errorf("route53 %s: %w", op, err)
}
