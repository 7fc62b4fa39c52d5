// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docuvault/db/ent/schema"
	"github.com/joseph-ayodele/docuvault/gen/ent/activity"
	"github.com/joseph-ayodele/docuvault/gen/ent/document"
	"github.com/joseph-ayodele/docuvault/gen/ent/share"
	"github.com/joseph-ayodele/docuvault/gen/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activityFields := schema.Activity{}.Fields()
	_ = activityFields
	// activityDescType is the schema descriptor for type field.
	activityDescType := activityFields[3].Descriptor()
	// activity.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	activity.TypeValidator = func() func(string) error {
		validators := activityDescType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_type string) error {
			for _, fn := range fns {
				if err := fn(_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// activityDescCreatedAt is the schema descriptor for created_at field.
	activityDescCreatedAt := activityFields[5].Descriptor()
	// activity.DefaultCreatedAt holds the default value on creation for the created_at field.
	activity.DefaultCreatedAt = activityDescCreatedAt.Default.(func() time.Time)
	// activityDescID is the schema descriptor for id field.
	activityDescID := activityFields[0].Descriptor()
	// activity.DefaultID holds the default value on creation for the id field.
	activity.DefaultID = activityDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFingerprint is the schema descriptor for fingerprint field.
	documentDescFingerprint := documentFields[2].Descriptor()
	// document.FingerprintValidator is a validator for the "fingerprint" field. It is called by the builders before save.
	document.FingerprintValidator = func() func(string) error {
		validators := documentDescFingerprint.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(fingerprint string) error {
			for _, fn := range fns {
				if err := fn(fingerprint); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescDisplayName is the schema descriptor for display_name field.
	documentDescDisplayName := documentFields[3].Descriptor()
	// document.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	document.DisplayNameValidator = documentDescDisplayName.Validators[0].(func(string) error)
	// documentDescOriginalFilename is the schema descriptor for original_filename field.
	documentDescOriginalFilename := documentFields[5].Descriptor()
	// document.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	document.OriginalFilenameValidator = documentDescOriginalFilename.Validators[0].(func(string) error)
	// documentDescStoredPath is the schema descriptor for stored_path field.
	documentDescStoredPath := documentFields[6].Descriptor()
	// document.StoredPathValidator is a validator for the "stored_path" field. It is called by the builders before save.
	document.StoredPathValidator = documentDescStoredPath.Validators[0].(func(string) error)
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[7].Descriptor()
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = documentDescCategory.Validators[0].(func(string) error)
	// documentDescConfidence is the schema descriptor for confidence field.
	documentDescConfidence := documentFields[8].Descriptor()
	// document.DefaultConfidence holds the default value on creation for the confidence field.
	document.DefaultConfidence = documentDescConfidence.Default.(float32)
	// documentDescFraudStatus is the schema descriptor for fraud_status field.
	documentDescFraudStatus := documentFields[9].Descriptor()
	// document.FraudStatusValidator is a validator for the "fraud_status" field. It is called by the builders before save.
	document.FraudStatusValidator = documentDescFraudStatus.Validators[0].(func(string) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[14].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[15].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	shareFields := schema.Share{}.Fields()
	_ = shareFields
	// shareDescCreatedAt is the schema descriptor for created_at field.
	shareDescCreatedAt := shareFields[3].Descriptor()
	// share.DefaultCreatedAt holds the default value on creation for the created_at field.
	share.DefaultCreatedAt = shareDescCreatedAt.Default.(func() time.Time)
	// shareDescID is the schema descriptor for id field.
	shareDescID := shareFields[0].Descriptor()
	// share.DefaultID holds the default value on creation for the id field.
	share.DefaultID = shareDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[3].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[5].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
