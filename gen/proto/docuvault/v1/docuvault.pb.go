// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docuvault/v1/docuvault.proto

package docuvaultv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Document struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UploaderId       string                 `protobuf:"bytes,2,opt,name=uploader_id,json=uploaderId,proto3" json:"uploader_id,omitempty"`
	Fingerprint      string                 `protobuf:"bytes,3,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	DisplayName      string                 `protobuf:"bytes,4,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description      string                 `protobuf:"bytes,5,opt,name=description,proto3" json:"description,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,6,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	StoredPath       string                 `protobuf:"bytes,7,opt,name=stored_path,json=storedPath,proto3" json:"stored_path,omitempty"`
	Category         string                 `protobuf:"bytes,8,opt,name=category,proto3" json:"category,omitempty"`
	Confidence       float64                `protobuf:"fixed64,9,opt,name=confidence,proto3" json:"confidence,omitempty"`
	FraudStatus      string                 `protobuf:"bytes,10,opt,name=fraud_status,json=fraudStatus,proto3" json:"fraud_status,omitempty"`
	FraudReason      string                 `protobuf:"bytes,11,opt,name=fraud_reason,json=fraudReason,proto3" json:"fraud_reason,omitempty"`
	UploadedAt       string                 `protobuf:"bytes,12,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	CreatedAt        string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`    // RFC3339
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetUploaderId() string {
	if x != nil {
		return x.UploaderId
	}
	return ""
}

func (x *Document) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

func (x *Document) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *Document) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Document) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *Document) GetStoredPath() string {
	if x != nil {
		return x.StoredPath
	}
	return ""
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Document) GetFraudStatus() string {
	if x != nil {
		return x.FraudStatus
	}
	return ""
}

func (x *Document) GetFraudReason() string {
	if x != nil {
		return x.FraudReason
	}
	return ""
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type UploadDocumentRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	UploaderId       string                 `protobuf:"bytes,1,opt,name=uploader_id,json=uploaderId,proto3" json:"uploader_id,omitempty"`
	DisplayName      string                 `protobuf:"bytes,2,opt,name=display_name,json=displayName,proto3" json:"display_name,omitempty"`
	Description      string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	OriginalFilename string                 `protobuf:"bytes,4,opt,name=original_filename,json=originalFilename,proto3" json:"original_filename,omitempty"`
	Content          []byte                 `protobuf:"bytes,5,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentRequest) GetUploaderId() string {
	if x != nil {
		return x.UploaderId
	}
	return ""
}

func (x *UploadDocumentRequest) GetDisplayName() string {
	if x != nil {
		return x.DisplayName
	}
	return ""
}

func (x *UploadDocumentRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *UploadDocumentRequest) GetOriginalFilename() string {
	if x != nil {
		return x.OriginalFilename
	}
	return ""
}

func (x *UploadDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{2}
}

func (x *UploadDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type VerifyDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Either raw content to re-hash, or a previously issued fingerprint.
	Content       []byte `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Fingerprint   string `protobuf:"bytes,2,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDocumentRequest) Reset() {
	*x = VerifyDocumentRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDocumentRequest) ProtoMessage() {}

func (x *VerifyDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDocumentRequest.ProtoReflect.Descriptor instead.
func (*VerifyDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{3}
}

func (x *VerifyDocumentRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *VerifyDocumentRequest) GetFingerprint() string {
	if x != nil {
		return x.Fingerprint
	}
	return ""
}

type VerifyDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Authentic     bool                   `protobuf:"varint,1,opt,name=authentic,proto3" json:"authentic,omitempty"`
	Document      *Document              `protobuf:"bytes,2,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyDocumentResponse) Reset() {
	*x = VerifyDocumentResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyDocumentResponse) ProtoMessage() {}

func (x *VerifyDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyDocumentResponse.ProtoReflect.Descriptor instead.
func (*VerifyDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{4}
}

func (x *VerifyDocumentResponse) GetAuthentic() bool {
	if x != nil {
		return x.Authentic
	}
	return false
}

func (x *VerifyDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploaderId    string                 `protobuf:"bytes,1,opt,name=uploader_id,json=uploaderId,proto3" json:"uploader_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	FraudStatus   string                 `protobuf:"bytes,3,opt,name=fraud_status,json=fraudStatus,proto3" json:"fraud_status,omitempty"`
	Query         string                 `protobuf:"bytes,4,opt,name=query,proto3" json:"query,omitempty"`
	Limit         int32                  `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,6,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{5}
}

func (x *ListDocumentsRequest) GetUploaderId() string {
	if x != nil {
		return x.UploaderId
	}
	return ""
}

func (x *ListDocumentsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListDocumentsRequest) GetFraudStatus() string {
	if x != nil {
		return x.FraudStatus
	}
	return ""
}

func (x *ListDocumentsRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{6}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type ShareDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	RecipientId   string                 `protobuf:"bytes,3,opt,name=recipient_id,json=recipientId,proto3" json:"recipient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShareDocumentRequest) Reset() {
	*x = ShareDocumentRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShareDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShareDocumentRequest) ProtoMessage() {}

func (x *ShareDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShareDocumentRequest.ProtoReflect.Descriptor instead.
func (*ShareDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{7}
}

func (x *ShareDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ShareDocumentRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ShareDocumentRequest) GetRecipientId() string {
	if x != nil {
		return x.RecipientId
	}
	return ""
}

type ShareDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShareDocumentResponse) Reset() {
	*x = ShareDocumentResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShareDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShareDocumentResponse) ProtoMessage() {}

func (x *ShareDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShareDocumentResponse.ProtoReflect.Descriptor instead.
func (*ShareDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{8}
}

type UnshareDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	RecipientId   string                 `protobuf:"bytes,3,opt,name=recipient_id,json=recipientId,proto3" json:"recipient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnshareDocumentRequest) Reset() {
	*x = UnshareDocumentRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnshareDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnshareDocumentRequest) ProtoMessage() {}

func (x *UnshareDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnshareDocumentRequest.ProtoReflect.Descriptor instead.
func (*UnshareDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{9}
}

func (x *UnshareDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UnshareDocumentRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *UnshareDocumentRequest) GetRecipientId() string {
	if x != nil {
		return x.RecipientId
	}
	return ""
}

type UnshareDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnshareDocumentResponse) Reset() {
	*x = UnshareDocumentResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnshareDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnshareDocumentResponse) ProtoMessage() {}

func (x *UnshareDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnshareDocumentResponse.ProtoReflect.Descriptor instead.
func (*UnshareDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{10}
}

type ListSharedDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RecipientId   string                 `protobuf:"bytes,1,opt,name=recipient_id,json=recipientId,proto3" json:"recipient_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSharedDocumentsRequest) Reset() {
	*x = ListSharedDocumentsRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSharedDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSharedDocumentsRequest) ProtoMessage() {}

func (x *ListSharedDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSharedDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListSharedDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{11}
}

func (x *ListSharedDocumentsRequest) GetRecipientId() string {
	if x != nil {
		return x.RecipientId
	}
	return ""
}

type ListSharedDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSharedDocumentsResponse) Reset() {
	*x = ListSharedDocumentsResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSharedDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSharedDocumentsResponse) ProtoMessage() {}

func (x *ListSharedDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSharedDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListSharedDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{12}
}

func (x *ListSharedDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DownloadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	RequesterId   string                 `protobuf:"bytes,2,opt,name=requester_id,json=requesterId,proto3" json:"requester_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadDocumentRequest) Reset() {
	*x = DownloadDocumentRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadDocumentRequest) ProtoMessage() {}

func (x *DownloadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadDocumentRequest.ProtoReflect.Descriptor instead.
func (*DownloadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{13}
}

func (x *DownloadDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *DownloadDocumentRequest) GetRequesterId() string {
	if x != nil {
		return x.RequesterId
	}
	return ""
}

type DownloadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadDocumentResponse) Reset() {
	*x = DownloadDocumentResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadDocumentResponse) ProtoMessage() {}

func (x *DownloadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadDocumentResponse.ProtoReflect.Descriptor instead.
func (*DownloadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{14}
}

func (x *DownloadDocumentResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *DownloadDocumentResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploaderId    string                 `protobuf:"bytes,1,opt,name=uploader_id,json=uploaderId,proto3" json:"uploader_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	IncludeExts   []string               `protobuf:"bytes,3,rep,name=include_exts,json=includeExts,proto3" json:"include_exts,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,4,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{15}
}

func (x *IngestDirectoryRequest) GetUploaderId() string {
	if x != nil {
		return x.UploaderId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetIncludeExts() []string {
	if x != nil {
		return x.IncludeExts
	}
	return nil
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestFileResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	FraudStatus   string                 `protobuf:"bytes,4,opt,name=fraud_status,json=fraudStatus,proto3" json:"fraud_status,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,5,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Error         string                 `protobuf:"bytes,6,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileResult) Reset() {
	*x = IngestFileResult{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileResult) ProtoMessage() {}

func (x *IngestFileResult) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileResult.ProtoReflect.Descriptor instead.
func (*IngestFileResult) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{16}
}

func (x *IngestFileResult) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *IngestFileResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestFileResult) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *IngestFileResult) GetFraudStatus() string {
	if x != nil {
		return x.FraudStatus
	}
	return ""
}

func (x *IngestFileResult) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestFileResult) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestFileResult    `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{17}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestFileResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type UpdateFraudStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	ReviewerId    string                 `protobuf:"bytes,2,opt,name=reviewer_id,json=reviewerId,proto3" json:"reviewer_id,omitempty"`
	FraudStatus   string                 `protobuf:"bytes,3,opt,name=fraud_status,json=fraudStatus,proto3" json:"fraud_status,omitempty"`
	Reason        string                 `protobuf:"bytes,4,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFraudStatusRequest) Reset() {
	*x = UpdateFraudStatusRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFraudStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFraudStatusRequest) ProtoMessage() {}

func (x *UpdateFraudStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFraudStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateFraudStatusRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{18}
}

func (x *UpdateFraudStatusRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UpdateFraudStatusRequest) GetReviewerId() string {
	if x != nil {
		return x.ReviewerId
	}
	return ""
}

func (x *UpdateFraudStatusRequest) GetFraudStatus() string {
	if x != nil {
		return x.FraudStatus
	}
	return ""
}

func (x *UpdateFraudStatusRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type UpdateFraudStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFraudStatusResponse) Reset() {
	*x = UpdateFraudStatusResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFraudStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFraudStatusResponse) ProtoMessage() {}

func (x *UpdateFraudStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFraudStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateFraudStatusResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{19}
}

func (x *UpdateFraudStatusResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type DashboardStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DashboardStatsRequest) Reset() {
	*x = DashboardStatsRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DashboardStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DashboardStatsRequest) ProtoMessage() {}

func (x *DashboardStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DashboardStatsRequest.ProtoReflect.Descriptor instead.
func (*DashboardStatsRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{20}
}

type DashboardStatsResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	TotalDocuments int32                  `protobuf:"varint,1,opt,name=total_documents,json=totalDocuments,proto3" json:"total_documents,omitempty"`
	Verified       int32                  `protobuf:"varint,2,opt,name=verified,proto3" json:"verified,omitempty"`
	Suspicious     int32                  `protobuf:"varint,3,opt,name=suspicious,proto3" json:"suspicious,omitempty"`
	Rejected       int32                  `protobuf:"varint,4,opt,name=rejected,proto3" json:"rejected,omitempty"`
	Pending        int32                  `protobuf:"varint,5,opt,name=pending,proto3" json:"pending,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DashboardStatsResponse) Reset() {
	*x = DashboardStatsResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DashboardStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DashboardStatsResponse) ProtoMessage() {}

func (x *DashboardStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DashboardStatsResponse.ProtoReflect.Descriptor instead.
func (*DashboardStatsResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{21}
}

func (x *DashboardStatsResponse) GetTotalDocuments() int32 {
	if x != nil {
		return x.TotalDocuments
	}
	return 0
}

func (x *DashboardStatsResponse) GetVerified() int32 {
	if x != nil {
		return x.Verified
	}
	return 0
}

func (x *DashboardStatsResponse) GetSuspicious() int32 {
	if x != nil {
		return x.Suspicious
	}
	return 0
}

func (x *DashboardStatsResponse) GetRejected() int32 {
	if x != nil {
		return x.Rejected
	}
	return 0
}

func (x *DashboardStatsResponse) GetPending() int32 {
	if x != nil {
		return x.Pending
	}
	return 0
}

type CategoryStatsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryStatsRequest) Reset() {
	*x = CategoryStatsRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryStatsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryStatsRequest) ProtoMessage() {}

func (x *CategoryStatsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryStatsRequest.ProtoReflect.Descriptor instead.
func (*CategoryStatsRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{22}
}

type CategoryCount struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryCount) Reset() {
	*x = CategoryCount{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryCount) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryCount) ProtoMessage() {}

func (x *CategoryCount) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryCount.ProtoReflect.Descriptor instead.
func (*CategoryCount) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{23}
}

func (x *CategoryCount) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CategoryCount) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type CategoryStatsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Categories    []*CategoryCount       `protobuf:"bytes,1,rep,name=categories,proto3" json:"categories,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CategoryStatsResponse) Reset() {
	*x = CategoryStatsResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryStatsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryStatsResponse) ProtoMessage() {}

func (x *CategoryStatsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryStatsResponse.ProtoReflect.Descriptor instead.
func (*CategoryStatsResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{24}
}

func (x *CategoryStatsResponse) GetCategories() []*CategoryCount {
	if x != nil {
		return x.Categories
	}
	return nil
}

type RecentActivityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecentActivityRequest) Reset() {
	*x = RecentActivityRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecentActivityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecentActivityRequest) ProtoMessage() {}

func (x *RecentActivityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecentActivityRequest.ProtoReflect.Descriptor instead.
func (*RecentActivityRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{25}
}

func (x *RecentActivityRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ActivityEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Type          string                 `protobuf:"bytes,4,opt,name=type,proto3" json:"type,omitempty"`
	Detail        string                 `protobuf:"bytes,5,opt,name=detail,proto3" json:"detail,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ActivityEntry) Reset() {
	*x = ActivityEntry{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ActivityEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ActivityEntry) ProtoMessage() {}

func (x *ActivityEntry) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ActivityEntry.ProtoReflect.Descriptor instead.
func (*ActivityEntry) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{26}
}

func (x *ActivityEntry) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ActivityEntry) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ActivityEntry) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ActivityEntry) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *ActivityEntry) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

func (x *ActivityEntry) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type RecentActivityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*ActivityEntry       `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecentActivityResponse) Reset() {
	*x = RecentActivityResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecentActivityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecentActivityResponse) ProtoMessage() {}

func (x *RecentActivityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecentActivityResponse.ProtoReflect.Descriptor instead.
func (*RecentActivityResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{27}
}

func (x *RecentActivityResponse) GetEntries() []*ActivityEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type User struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Role          string                 `protobuf:"bytes,4,opt,name=role,proto3" json:"role,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{28}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	Role          string                 `protobuf:"bytes,3,opt,name=role,proto3" json:"role,omitempty"` // "user" or "admin", defaults to "user"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{29}
}

func (x *CreateUserRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateUserRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{30}
}

func (x *CreateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type ListUsersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersRequest) Reset() {
	*x = ListUsersRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersRequest) ProtoMessage() {}

func (x *ListUsersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersRequest.ProtoReflect.Descriptor instead.
func (*ListUsersRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{31}
}

type ListUsersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Users         []*User                `protobuf:"bytes,1,rep,name=users,proto3" json:"users,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUsersResponse) Reset() {
	*x = ListUsersResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUsersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUsersResponse) ProtoMessage() {}

func (x *ListUsersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUsersResponse.ProtoReflect.Descriptor instead.
func (*ListUsersResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{32}
}

func (x *ListUsersResponse) GetUsers() []*User {
	if x != nil {
		return x.Users
	}
	return nil
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	FraudStatus   string                 `protobuf:"bytes,2,opt,name=fraud_status,json=fraudStatus,proto3" json:"fraud_status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{33}
}

func (x *ExportDocumentsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ExportDocumentsRequest) GetFraudStatus() string {
	if x != nil {
		return x.FraudStatus
	}
	return ""
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docuvault_v1_docuvault_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docuvault_v1_docuvault_proto_rawDescGZIP(), []int{34}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_docuvault_v1_docuvault_proto protoreflect.FileDescriptor

const file_docuvault_v1_docuvault_proto_rawDesc = "" +
	"\n" +
	"\x1cdocuvault/v1/docuvault.proto\x12\fdocuvault.v1\"\xb2\x03\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vuploader_id\x18\x02 \x01(\tR\n" +
	"uploaderId\x12 \n" +
	"\vfingerprint\x18\x03 \x01(\tR\vfingerprint\x12!\n" +
	"\fdisplay_name\x18\x04 \x01(\tR\vdisplayName\x12 \n" +
	"\vdescription\x18\x05 \x01(\tR\vdescription\x12+\n" +
	"\x11original_filename\x18\x06 \x01(\tR\x10originalFilename\x12\x1f\n" +
	"\vstored_path\x18\a \x01(\tR\n" +
	"storedPath\x12\x1a\n" +
	"\bcategory\x18\b \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\t \x01(\x01R\n" +
	"confidence\x12!\n" +
	"\ffraud_status\x18\n" +
	" \x01(\tR\vfraudStatus\x12!\n" +
	"\ffraud_reason\x18\v \x01(\tR\vfraudReason\x12\x1f\n" +
	"\vuploaded_at\x18\f \x01(\tR\n" +
	"uploadedAt\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\"\xc4\x01\n" +
	"\x15UploadDocumentRequest\x12\x1f\n" +
	"\vuploader_id\x18\x01 \x01(\tR\n" +
	"uploaderId\x12!\n" +
	"\fdisplay_name\x18\x02 \x01(\tR\vdisplayName\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12+\n" +
	"\x11original_filename\x18\x04 \x01(\tR\x10originalFilename\x12\x18\n" +
	"\acontent\x18\x05 \x01(\fR\acontent\"L\n" +
	"\x16UploadDocumentResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docuvault.v1.DocumentR\bdocument\"S\n" +
	"\x15VerifyDocumentRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12 \n" +
	"\vfingerprint\x18\x02 \x01(\tR\vfingerprint\"j\n" +
	"\x16VerifyDocumentResponse\x12\x1c\n" +
	"\tauthentic\x18\x01 \x01(\bR\tauthentic\x122\n" +
	"\bdocument\x18\x02 \x01(\v2\x16.docuvault.v1.DocumentR\bdocument\"\xba\x01\n" +
	"\x14ListDocumentsRequest\x12\x1f\n" +
	"\vuploader_id\x18\x01 \x01(\tR\n" +
	"uploaderId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12!\n" +
	"\ffraud_status\x18\x03 \x01(\tR\vfraudStatus\x12\x14\n" +
	"\x05query\x18\x04 \x01(\tR\x05query\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x06 \x01(\x05R\x06offset\"M\n" +
	"\x15ListDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.docuvault.v1.DocumentR\tdocuments\"u\n" +
	"\x14ShareDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12!\n" +
	"\frecipient_id\x18\x03 \x01(\tR\vrecipientId\"\x17\n" +
	"\x15ShareDocumentResponse\"w\n" +
	"\x16UnshareDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12!\n" +
	"\frecipient_id\x18\x03 \x01(\tR\vrecipientId\"\x19\n" +
	"\x17UnshareDocumentResponse\"?\n" +
	"\x1aListSharedDocumentsRequest\x12!\n" +
	"\frecipient_id\x18\x01 \x01(\tR\vrecipientId\"S\n" +
	"\x1bListSharedDocumentsResponse\x124\n" +
	"\tdocuments\x18\x01 \x03(\v2\x16.docuvault.v1.DocumentR\tdocuments\"]\n" +
	"\x17DownloadDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12!\n" +
	"\frequester_id\x18\x02 \x01(\tR\vrequesterId\"Q\n" +
	"\x18DownloadDocumentResponse\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\x9a\x01\n" +
	"\x16IngestDirectoryRequest\x12\x1f\n" +
	"\vuploader_id\x18\x01 \x01(\tR\n" +
	"uploaderId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12!\n" +
	"\finclude_exts\x18\x03 \x03(\tR\vincludeExts\x12\x1f\n" +
	"\vskip_hidden\x18\x04 \x01(\bR\n" +
	"skipHidden\"\xc0\x01\n" +
	"\x10IngestFileResult\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12!\n" +
	"\ffraud_status\x18\x04 \x01(\tR\vfraudStatus\x12\"\n" +
	"\fdeduplicated\x18\x05 \x01(\bR\fdeduplicated\x12\x14\n" +
	"\x05error\x18\x06 \x01(\tR\x05error\"\xe1\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x128\n" +
	"\aresults\x18\x06 \x03(\v2\x1e.docuvault.v1.IngestFileResultR\aresults\"\x97\x01\n" +
	"\x18UpdateFraudStatusRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vreviewer_id\x18\x02 \x01(\tR\n" +
	"reviewerId\x12!\n" +
	"\ffraud_status\x18\x03 \x01(\tR\vfraudStatus\x12\x16\n" +
	"\x06reason\x18\x04 \x01(\tR\x06reason\"O\n" +
	"\x19UpdateFraudStatusResponse\x122\n" +
	"\bdocument\x18\x01 \x01(\v2\x16.docuvault.v1.DocumentR\bdocument\"\x17\n" +
	"\x15DashboardStatsRequest\"\xb3\x01\n" +
	"\x16DashboardStatsResponse\x12'\n" +
	"\x0ftotal_documents\x18\x01 \x01(\x05R\x0etotalDocuments\x12\x1a\n" +
	"\bverified\x18\x02 \x01(\x05R\bverified\x12\x1e\n" +
	"\n" +
	"suspicious\x18\x03 \x01(\x05R\n" +
	"suspicious\x12\x1a\n" +
	"\brejected\x18\x04 \x01(\x05R\brejected\x12\x18\n" +
	"\apending\x18\x05 \x01(\x05R\apending\"\x16\n" +
	"\x14CategoryStatsRequest\"A\n" +
	"\rCategoryCount\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"T\n" +
	"\x15CategoryStatsResponse\x12;\n" +
	"\n" +
	"categories\x18\x01 \x03(\v2\x1b.docuvault.v1.CategoryCountR\n" +
	"categories\"-\n" +
	"\x15RecentActivityRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"\xa4\x01\n" +
	"\rActivityEntry\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x1f\n" +
	"\vdocument_id\x18\x03 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04type\x18\x04 \x01(\tR\x04type\x12\x16\n" +
	"\x06detail\x18\x05 \x01(\tR\x06detail\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\"O\n" +
	"\x16RecentActivityResponse\x125\n" +
	"\aentries\x18\x01 \x03(\v2\x1b.docuvault.v1.ActivityEntryR\aentries\"s\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x12\n" +
	"\x04role\x18\x04 \x01(\tR\x04role\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"Q\n" +
	"\x11CreateUserRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x12\n" +
	"\x04role\x18\x03 \x01(\tR\x04role\"<\n" +
	"\x12CreateUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.docuvault.v1.UserR\x04user\"\x12\n" +
	"\x10ListUsersRequest\"=\n" +
	"\x11ListUsersResponse\x12(\n" +
	"\x05users\x18\x01 \x03(\v2\x12.docuvault.v1.UserR\x05users\"W\n" +
	"\x16ExportDocumentsRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12!\n" +
	"\ffraud_status\x18\x02 \x01(\tR\vfraudStatus\"-\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x8f\x06\n" +
	"\x10DocumentsService\x12[\n" +
	"\x0eUploadDocument\x12#.docuvault.v1.UploadDocumentRequest\x1a$.docuvault.v1.UploadDocumentResponse\x12[\n" +
	"\x0eVerifyDocument\x12#.docuvault.v1.VerifyDocumentRequest\x1a$.docuvault.v1.VerifyDocumentResponse\x12X\n" +
	"\rListDocuments\x12\".docuvault.v1.ListDocumentsRequest\x1a#.docuvault.v1.ListDocumentsResponse\x12X\n" +
	"\rShareDocument\x12\".docuvault.v1.ShareDocumentRequest\x1a#.docuvault.v1.ShareDocumentResponse\x12^\n" +
	"\x0fUnshareDocument\x12$.docuvault.v1.UnshareDocumentRequest\x1a%.docuvault.v1.UnshareDocumentResponse\x12j\n" +
	"\x13ListSharedDocuments\x12(.docuvault.v1.ListSharedDocumentsRequest\x1a).docuvault.v1.ListSharedDocumentsResponse\x12a\n" +
	"\x10DownloadDocument\x12%.docuvault.v1.DownloadDocumentRequest\x1a&.docuvault.v1.DownloadDocumentResponse\x12^\n" +
	"\x0fIngestDirectory\x12$.docuvault.v1.IngestDirectoryRequest\x1a%.docuvault.v1.IngestDirectoryResponse2\x87\x05\n" +
	"\fAdminService\x12d\n" +
	"\x11UpdateFraudStatus\x12&.docuvault.v1.UpdateFraudStatusRequest\x1a'.docuvault.v1.UpdateFraudStatusResponse\x12[\n" +
	"\x0eDashboardStats\x12#.docuvault.v1.DashboardStatsRequest\x1a$.docuvault.v1.DashboardStatsResponse\x12X\n" +
	"\rCategoryStats\x12\".docuvault.v1.CategoryStatsRequest\x1a#.docuvault.v1.CategoryStatsResponse\x12[\n" +
	"\x0eRecentActivity\x12#.docuvault.v1.RecentActivityRequest\x1a$.docuvault.v1.RecentActivityResponse\x12O\n" +
	"\n" +
	"CreateUser\x12\x1f.docuvault.v1.CreateUserRequest\x1a .docuvault.v1.CreateUserResponse\x12L\n" +
	"\tListUsers\x12\x1e.docuvault.v1.ListUsersRequest\x1a\x1f.docuvault.v1.ListUsersResponse\x12^\n" +
	"\x0fExportDocuments\x12$.docuvault.v1.ExportDocumentsRequest\x1a%.docuvault.v1.ExportDocumentsResponseBHZFgithub.com/joseph-ayodele/docuvault/gen/proto/docuvault/v1;docuvaultv1b\x06proto3"

var (
	file_docuvault_v1_docuvault_proto_rawDescOnce sync.Once
	file_docuvault_v1_docuvault_proto_rawDescData []byte
)

func file_docuvault_v1_docuvault_proto_rawDescGZIP() []byte {
	file_docuvault_v1_docuvault_proto_rawDescOnce.Do(func() {
		file_docuvault_v1_docuvault_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docuvault_v1_docuvault_proto_rawDesc), len(file_docuvault_v1_docuvault_proto_rawDesc)))
	})
	return file_docuvault_v1_docuvault_proto_rawDescData
}

var file_docuvault_v1_docuvault_proto_msgTypes = make([]protoimpl.MessageInfo, 35)
var file_docuvault_v1_docuvault_proto_goTypes = []any{
	(*Document)(nil),                    // 0: docuvault.v1.Document
	(*UploadDocumentRequest)(nil),       // 1: docuvault.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),      // 2: docuvault.v1.UploadDocumentResponse
	(*VerifyDocumentRequest)(nil),       // 3: docuvault.v1.VerifyDocumentRequest
	(*VerifyDocumentResponse)(nil),      // 4: docuvault.v1.VerifyDocumentResponse
	(*ListDocumentsRequest)(nil),        // 5: docuvault.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),       // 6: docuvault.v1.ListDocumentsResponse
	(*ShareDocumentRequest)(nil),        // 7: docuvault.v1.ShareDocumentRequest
	(*ShareDocumentResponse)(nil),       // 8: docuvault.v1.ShareDocumentResponse
	(*UnshareDocumentRequest)(nil),      // 9: docuvault.v1.UnshareDocumentRequest
	(*UnshareDocumentResponse)(nil),     // 10: docuvault.v1.UnshareDocumentResponse
	(*ListSharedDocumentsRequest)(nil),  // 11: docuvault.v1.ListSharedDocumentsRequest
	(*ListSharedDocumentsResponse)(nil), // 12: docuvault.v1.ListSharedDocumentsResponse
	(*DownloadDocumentRequest)(nil),     // 13: docuvault.v1.DownloadDocumentRequest
	(*DownloadDocumentResponse)(nil),    // 14: docuvault.v1.DownloadDocumentResponse
	(*IngestDirectoryRequest)(nil),      // 15: docuvault.v1.IngestDirectoryRequest
	(*IngestFileResult)(nil),            // 16: docuvault.v1.IngestFileResult
	(*IngestDirectoryResponse)(nil),     // 17: docuvault.v1.IngestDirectoryResponse
	(*UpdateFraudStatusRequest)(nil),    // 18: docuvault.v1.UpdateFraudStatusRequest
	(*UpdateFraudStatusResponse)(nil),   // 19: docuvault.v1.UpdateFraudStatusResponse
	(*DashboardStatsRequest)(nil),       // 20: docuvault.v1.DashboardStatsRequest
	(*DashboardStatsResponse)(nil),      // 21: docuvault.v1.DashboardStatsResponse
	(*CategoryStatsRequest)(nil),        // 22: docuvault.v1.CategoryStatsRequest
	(*CategoryCount)(nil),               // 23: docuvault.v1.CategoryCount
	(*CategoryStatsResponse)(nil),       // 24: docuvault.v1.CategoryStatsResponse
	(*RecentActivityRequest)(nil),       // 25: docuvault.v1.RecentActivityRequest
	(*ActivityEntry)(nil),               // 26: docuvault.v1.ActivityEntry
	(*RecentActivityResponse)(nil),      // 27: docuvault.v1.RecentActivityResponse
	(*User)(nil),                        // 28: docuvault.v1.User
	(*CreateUserRequest)(nil),           // 29: docuvault.v1.CreateUserRequest
	(*CreateUserResponse)(nil),          // 30: docuvault.v1.CreateUserResponse
	(*ListUsersRequest)(nil),            // 31: docuvault.v1.ListUsersRequest
	(*ListUsersResponse)(nil),           // 32: docuvault.v1.ListUsersResponse
	(*ExportDocumentsRequest)(nil),      // 33: docuvault.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil),     // 34: docuvault.v1.ExportDocumentsResponse
}
var file_docuvault_v1_docuvault_proto_depIdxs = []int32{
	0,  // 0: docuvault.v1.UploadDocumentResponse.document:type_name -> docuvault.v1.Document
	0,  // 1: docuvault.v1.VerifyDocumentResponse.document:type_name -> docuvault.v1.Document
	0,  // 2: docuvault.v1.ListDocumentsResponse.documents:type_name -> docuvault.v1.Document
	0,  // 3: docuvault.v1.ListSharedDocumentsResponse.documents:type_name -> docuvault.v1.Document
	16, // 4: docuvault.v1.IngestDirectoryResponse.results:type_name -> docuvault.v1.IngestFileResult
	0,  // 5: docuvault.v1.UpdateFraudStatusResponse.document:type_name -> docuvault.v1.Document
	23, // 6: docuvault.v1.CategoryStatsResponse.categories:type_name -> docuvault.v1.CategoryCount
	26, // 7: docuvault.v1.RecentActivityResponse.entries:type_name -> docuvault.v1.ActivityEntry
	28, // 8: docuvault.v1.CreateUserResponse.user:type_name -> docuvault.v1.User
	28, // 9: docuvault.v1.ListUsersResponse.users:type_name -> docuvault.v1.User
	1,  // 10: docuvault.v1.DocumentsService.UploadDocument:input_type -> docuvault.v1.UploadDocumentRequest
	3,  // 11: docuvault.v1.DocumentsService.VerifyDocument:input_type -> docuvault.v1.VerifyDocumentRequest
	5,  // 12: docuvault.v1.DocumentsService.ListDocuments:input_type -> docuvault.v1.ListDocumentsRequest
	7,  // 13: docuvault.v1.DocumentsService.ShareDocument:input_type -> docuvault.v1.ShareDocumentRequest
	9,  // 14: docuvault.v1.DocumentsService.UnshareDocument:input_type -> docuvault.v1.UnshareDocumentRequest
	11, // 15: docuvault.v1.DocumentsService.ListSharedDocuments:input_type -> docuvault.v1.ListSharedDocumentsRequest
	13, // 16: docuvault.v1.DocumentsService.DownloadDocument:input_type -> docuvault.v1.DownloadDocumentRequest
	15, // 17: docuvault.v1.DocumentsService.IngestDirectory:input_type -> docuvault.v1.IngestDirectoryRequest
	18, // 18: docuvault.v1.AdminService.UpdateFraudStatus:input_type -> docuvault.v1.UpdateFraudStatusRequest
	20, // 19: docuvault.v1.AdminService.DashboardStats:input_type -> docuvault.v1.DashboardStatsRequest
	22, // 20: docuvault.v1.AdminService.CategoryStats:input_type -> docuvault.v1.CategoryStatsRequest
	25, // 21: docuvault.v1.AdminService.RecentActivity:input_type -> docuvault.v1.RecentActivityRequest
	29, // 22: docuvault.v1.AdminService.CreateUser:input_type -> docuvault.v1.CreateUserRequest
	31, // 23: docuvault.v1.AdminService.ListUsers:input_type -> docuvault.v1.ListUsersRequest
	33, // 24: docuvault.v1.AdminService.ExportDocuments:input_type -> docuvault.v1.ExportDocumentsRequest
	2,  // 25: docuvault.v1.DocumentsService.UploadDocument:output_type -> docuvault.v1.UploadDocumentResponse
	4,  // 26: docuvault.v1.DocumentsService.VerifyDocument:output_type -> docuvault.v1.VerifyDocumentResponse
	6,  // 27: docuvault.v1.DocumentsService.ListDocuments:output_type -> docuvault.v1.ListDocumentsResponse
	8,  // 28: docuvault.v1.DocumentsService.ShareDocument:output_type -> docuvault.v1.ShareDocumentResponse
	10, // 29: docuvault.v1.DocumentsService.UnshareDocument:output_type -> docuvault.v1.UnshareDocumentResponse
	12, // 30: docuvault.v1.DocumentsService.ListSharedDocuments:output_type -> docuvault.v1.ListSharedDocumentsResponse
	14, // 31: docuvault.v1.DocumentsService.DownloadDocument:output_type -> docuvault.v1.DownloadDocumentResponse
	17, // 32: docuvault.v1.DocumentsService.IngestDirectory:output_type -> docuvault.v1.IngestDirectoryResponse
	19, // 33: docuvault.v1.AdminService.UpdateFraudStatus:output_type -> docuvault.v1.UpdateFraudStatusResponse
	21, // 34: docuvault.v1.AdminService.DashboardStats:output_type -> docuvault.v1.DashboardStatsResponse
	24, // 35: docuvault.v1.AdminService.CategoryStats:output_type -> docuvault.v1.CategoryStatsResponse
	27, // 36: docuvault.v1.AdminService.RecentActivity:output_type -> docuvault.v1.RecentActivityResponse
	30, // 37: docuvault.v1.AdminService.CreateUser:output_type -> docuvault.v1.CreateUserResponse
	32, // 38: docuvault.v1.AdminService.ListUsers:output_type -> docuvault.v1.ListUsersResponse
	34, // 39: docuvault.v1.AdminService.ExportDocuments:output_type -> docuvault.v1.ExportDocumentsResponse
	25, // [25:40] is the sub-list for method output_type
	10, // [10:25] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_docuvault_v1_docuvault_proto_init() }
func file_docuvault_v1_docuvault_proto_init() {
	if File_docuvault_v1_docuvault_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docuvault_v1_docuvault_proto_rawDesc), len(file_docuvault_v1_docuvault_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   35,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_docuvault_v1_docuvault_proto_goTypes,
		DependencyIndexes: file_docuvault_v1_docuvault_proto_depIdxs,
		MessageInfos:      file_docuvault_v1_docuvault_proto_msgTypes,
	}.Build()
	File_docuvault_v1_docuvault_proto = out.File
	file_docuvault_v1_docuvault_proto_goTypes = nil
	file_docuvault_v1_docuvault_proto_depIdxs = nil
}
