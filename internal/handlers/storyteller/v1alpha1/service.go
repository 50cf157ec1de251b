package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the full gRPC service name
const ServiceName = "storyteller.v1alpha1.StorytellerService"

// Full method names
const (
	StorytellerService_StartAdventure_FullMethodName   = "/storyteller.v1alpha1.StorytellerService/StartAdventure"
	StorytellerService_Act_FullMethodName              = "/storyteller.v1alpha1.StorytellerService/Act"
	StorytellerService_GetStatus_FullMethodName        = "/storyteller.v1alpha1.StorytellerService/GetStatus"
	StorytellerService_AbandonAdventure_FullMethodName = "/storyteller.v1alpha1.StorytellerService/AbandonAdventure"
	StorytellerService_CreateCandidates_FullMethodName = "/storyteller.v1alpha1.StorytellerService/CreateCandidates"
	StorytellerService_ChooseCandidate_FullMethodName  = "/storyteller.v1alpha1.StorytellerService/ChooseCandidate"
	StorytellerService_AllocateSkills_FullMethodName   = "/storyteller.v1alpha1.StorytellerService/AllocateSkills"
	StorytellerService_GetInvestigator_FullMethodName  = "/storyteller.v1alpha1.StorytellerService/GetInvestigator"
	StorytellerService_Equip_FullMethodName            = "/storyteller.v1alpha1.StorytellerService/Equip"
	StorytellerService_GetInventory_FullMethodName     = "/storyteller.v1alpha1.StorytellerService/GetInventory"
	StorytellerService_GetItem_FullMethodName          = "/storyteller.v1alpha1.StorytellerService/GetItem"
	StorytellerService_GetShop_FullMethodName          = "/storyteller.v1alpha1.StorytellerService/GetShop"
	StorytellerService_Buy_FullMethodName              = "/storyteller.v1alpha1.StorytellerService/Buy"
)

// StorytellerServiceClient is the client API for StorytellerService
type StorytellerServiceClient interface {
	StartAdventure(ctx context.Context, in *StartAdventureRequest, opts ...grpc.CallOption) (*StartAdventureResponse, error)
	Act(ctx context.Context, in *ActRequest, opts ...grpc.CallOption) (*ActResponse, error)
	GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error)
	AbandonAdventure(ctx context.Context, in *AbandonAdventureRequest, opts ...grpc.CallOption) (*AbandonAdventureResponse, error)
	CreateCandidates(ctx context.Context, in *CreateCandidatesRequest, opts ...grpc.CallOption) (*CreateCandidatesResponse, error)
	ChooseCandidate(ctx context.Context, in *ChooseCandidateRequest, opts ...grpc.CallOption) (*ChooseCandidateResponse, error)
	AllocateSkills(ctx context.Context, in *AllocateSkillsRequest, opts ...grpc.CallOption) (*AllocateSkillsResponse, error)
	GetInvestigator(ctx context.Context, in *GetInvestigatorRequest, opts ...grpc.CallOption) (*GetInvestigatorResponse, error)
	Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error)
	GetInventory(ctx context.Context, in *GetInventoryRequest, opts ...grpc.CallOption) (*GetInventoryResponse, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error)
	GetShop(ctx context.Context, in *GetShopRequest, opts ...grpc.CallOption) (*GetShopResponse, error)
	Buy(ctx context.Context, in *BuyRequest, opts ...grpc.CallOption) (*BuyResponse, error)
}

type storytellerServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStorytellerServiceClient creates a client that speaks the JSON codec
func NewStorytellerServiceClient(cc grpc.ClientConnInterface) StorytellerServiceClient {
	return &storytellerServiceClient{cc}
}

func (c *storytellerServiceClient) StartAdventure(ctx context.Context, in *StartAdventureRequest, opts ...grpc.CallOption) (*StartAdventureResponse, error) {
	out := new(StartAdventureResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_StartAdventure_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) Act(ctx context.Context, in *ActRequest, opts ...grpc.CallOption) (*ActResponse, error) {
	out := new(ActResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_Act_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) GetStatus(ctx context.Context, in *GetStatusRequest, opts ...grpc.CallOption) (*GetStatusResponse, error) {
	out := new(GetStatusResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_GetStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) AbandonAdventure(ctx context.Context, in *AbandonAdventureRequest, opts ...grpc.CallOption) (*AbandonAdventureResponse, error) {
	out := new(AbandonAdventureResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_AbandonAdventure_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) CreateCandidates(ctx context.Context, in *CreateCandidatesRequest, opts ...grpc.CallOption) (*CreateCandidatesResponse, error) {
	out := new(CreateCandidatesResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_CreateCandidates_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) ChooseCandidate(ctx context.Context, in *ChooseCandidateRequest, opts ...grpc.CallOption) (*ChooseCandidateResponse, error) {
	out := new(ChooseCandidateResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_ChooseCandidate_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) AllocateSkills(ctx context.Context, in *AllocateSkillsRequest, opts ...grpc.CallOption) (*AllocateSkillsResponse, error) {
	out := new(AllocateSkillsResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_AllocateSkills_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) GetInvestigator(ctx context.Context, in *GetInvestigatorRequest, opts ...grpc.CallOption) (*GetInvestigatorResponse, error) {
	out := new(GetInvestigatorResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_GetInvestigator_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) Equip(ctx context.Context, in *EquipRequest, opts ...grpc.CallOption) (*EquipResponse, error) {
	out := new(EquipResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_Equip_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) GetInventory(ctx context.Context, in *GetInventoryRequest, opts ...grpc.CallOption) (*GetInventoryResponse, error) {
	out := new(GetInventoryResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_GetInventory_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*GetItemResponse, error) {
	out := new(GetItemResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_GetItem_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) GetShop(ctx context.Context, in *GetShopRequest, opts ...grpc.CallOption) (*GetShopResponse, error) {
	out := new(GetShopResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_GetShop_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *storytellerServiceClient) Buy(ctx context.Context, in *BuyRequest, opts ...grpc.CallOption) (*BuyResponse, error) {
	out := new(BuyResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, StorytellerService_Buy_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// StorytellerServiceServer is the server API for StorytellerService
type StorytellerServiceServer interface {
	// StartAdventure begins the day's fight
	StartAdventure(context.Context, *StartAdventureRequest) (*StartAdventureResponse, error)
	// Act resolves one action in the fight
	Act(context.Context, *ActRequest) (*ActResponse, error)
	// GetStatus describes the fight in flight
	GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error)
	// AbandonAdventure gives up the fight
	AbandonAdventure(context.Context, *AbandonAdventureRequest) (*AbandonAdventureResponse, error)
	// CreateCandidates rolls investigator candidates
	CreateCandidates(context.Context, *CreateCandidatesRequest) (*CreateCandidatesResponse, error)
	// ChooseCandidate picks a rolled candidate
	ChooseCandidate(context.Context, *ChooseCandidateRequest) (*ChooseCandidateResponse, error)
	// AllocateSkills spends skill points and saves the investigator
	AllocateSkills(context.Context, *AllocateSkillsRequest) (*AllocateSkillsResponse, error)
	// GetInvestigator loads an investigator
	GetInvestigator(context.Context, *GetInvestigatorRequest) (*GetInvestigatorResponse, error)
	// Equip equips a carried item
	Equip(context.Context, *EquipRequest) (*EquipResponse, error)
	// GetInventory lists the pack
	GetInventory(context.Context, *GetInventoryRequest) (*GetInventoryResponse, error)
	// GetItem describes a catalog item
	GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error)
	// GetShop lists today's stock
	GetShop(context.Context, *GetShopRequest) (*GetShopResponse, error)
	// Buy purchases one of today's offers
	Buy(context.Context, *BuyRequest) (*BuyResponse, error)
}

// UnimplementedStorytellerServiceServer answers every method with Unimplemented
type UnimplementedStorytellerServiceServer struct{}

// StartAdventure is not implemented
func (UnimplementedStorytellerServiceServer) StartAdventure(context.Context, *StartAdventureRequest) (*StartAdventureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method StartAdventure not implemented")
}

// Act is not implemented
func (UnimplementedStorytellerServiceServer) Act(context.Context, *ActRequest) (*ActResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Act not implemented")
}

// GetStatus is not implemented
func (UnimplementedStorytellerServiceServer) GetStatus(context.Context, *GetStatusRequest) (*GetStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}

// AbandonAdventure is not implemented
func (UnimplementedStorytellerServiceServer) AbandonAdventure(context.Context, *AbandonAdventureRequest) (*AbandonAdventureResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AbandonAdventure not implemented")
}

// CreateCandidates is not implemented
func (UnimplementedStorytellerServiceServer) CreateCandidates(context.Context, *CreateCandidatesRequest) (*CreateCandidatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateCandidates not implemented")
}

// ChooseCandidate is not implemented
func (UnimplementedStorytellerServiceServer) ChooseCandidate(context.Context, *ChooseCandidateRequest) (*ChooseCandidateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ChooseCandidate not implemented")
}

// AllocateSkills is not implemented
func (UnimplementedStorytellerServiceServer) AllocateSkills(context.Context, *AllocateSkillsRequest) (*AllocateSkillsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AllocateSkills not implemented")
}

// GetInvestigator is not implemented
func (UnimplementedStorytellerServiceServer) GetInvestigator(context.Context, *GetInvestigatorRequest) (*GetInvestigatorResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInvestigator not implemented")
}

// Equip is not implemented
func (UnimplementedStorytellerServiceServer) Equip(context.Context, *EquipRequest) (*EquipResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Equip not implemented")
}

// GetInventory is not implemented
func (UnimplementedStorytellerServiceServer) GetInventory(context.Context, *GetInventoryRequest) (*GetInventoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetInventory not implemented")
}

// GetItem is not implemented
func (UnimplementedStorytellerServiceServer) GetItem(context.Context, *GetItemRequest) (*GetItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}

// GetShop is not implemented
func (UnimplementedStorytellerServiceServer) GetShop(context.Context, *GetShopRequest) (*GetShopResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShop not implemented")
}

// Buy is not implemented
func (UnimplementedStorytellerServiceServer) Buy(context.Context, *BuyRequest) (*BuyResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Buy not implemented")
}

// RegisterStorytellerServiceServer registers srv on s
func RegisterStorytellerServiceServer(s grpc.ServiceRegistrar, srv StorytellerServiceServer) {
	s.RegisterService(&StorytellerService_ServiceDesc, srv)
}

func _StorytellerService_StartAdventure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartAdventureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).StartAdventure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_StartAdventure_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).StartAdventure(ctx, req.(*StartAdventureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_Act_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ActRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).Act(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_Act_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).Act(ctx, req.(*ActRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_GetStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).GetStatus(ctx, req.(*GetStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_AbandonAdventure_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbandonAdventureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).AbandonAdventure(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_AbandonAdventure_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).AbandonAdventure(ctx, req.(*AbandonAdventureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_CreateCandidates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateCandidatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).CreateCandidates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_CreateCandidates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).CreateCandidates(ctx, req.(*CreateCandidatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_ChooseCandidate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChooseCandidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).ChooseCandidate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_ChooseCandidate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).ChooseCandidate(ctx, req.(*ChooseCandidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_AllocateSkills_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AllocateSkillsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).AllocateSkills(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_AllocateSkills_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).AllocateSkills(ctx, req.(*AllocateSkillsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_GetInvestigator_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInvestigatorRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).GetInvestigator(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_GetInvestigator_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).GetInvestigator(ctx, req.(*GetInvestigatorRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_Equip_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EquipRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).Equip(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_Equip_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).Equip(ctx, req.(*EquipRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_GetInventory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetInventoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).GetInventory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_GetInventory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).GetInventory(ctx, req.(*GetInventoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_GetItem_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetItemRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).GetItem(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_GetItem_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).GetItem(ctx, req.(*GetItemRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_GetShop_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetShopRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).GetShop(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_GetShop_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).GetShop(ctx, req.(*GetShopRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StorytellerService_Buy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StorytellerServiceServer).Buy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StorytellerService_Buy_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StorytellerServiceServer).Buy(ctx, req.(*BuyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StorytellerService_ServiceDesc is the grpc.ServiceDesc for StorytellerService
var StorytellerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorytellerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartAdventure",
			Handler:    _StorytellerService_StartAdventure_Handler,
		},
		{
			MethodName: "Act",
			Handler:    _StorytellerService_Act_Handler,
		},
		{
			MethodName: "GetStatus",
			Handler:    _StorytellerService_GetStatus_Handler,
		},
		{
			MethodName: "AbandonAdventure",
			Handler:    _StorytellerService_AbandonAdventure_Handler,
		},
		{
			MethodName: "CreateCandidates",
			Handler:    _StorytellerService_CreateCandidates_Handler,
		},
		{
			MethodName: "ChooseCandidate",
			Handler:    _StorytellerService_ChooseCandidate_Handler,
		},
		{
			MethodName: "AllocateSkills",
			Handler:    _StorytellerService_AllocateSkills_Handler,
		},
		{
			MethodName: "GetInvestigator",
			Handler:    _StorytellerService_GetInvestigator_Handler,
		},
		{
			MethodName: "Equip",
			Handler:    _StorytellerService_Equip_Handler,
		},
		{
			MethodName: "GetInventory",
			Handler:    _StorytellerService_GetInventory_Handler,
		},
		{
			MethodName: "GetItem",
			Handler:    _StorytellerService_GetItem_Handler,
		},
		{
			MethodName: "GetShop",
			Handler:    _StorytellerService_GetShop_Handler,
		},
		{
			MethodName: "Buy",
			Handler:    _StorytellerService_Buy_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storyteller/v1alpha1/storyteller.json",
}
