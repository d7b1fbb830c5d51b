package kind

import "fmt"

// ElementKind is a closed, tagged classification of a model element,
// corresponding to a SysML v2 metamodel class.
type ElementKind uint16

// maxSubtypeDepth bounds the upward walk performed by [IsSubtypeOf]. The
// generated OMG hierarchy is shallower than this in practice; the guard
// exists to make the walk provably terminating regardless of how the
// catalogue is regenerated.
const maxSubtypeDepth = 32

// entry holds one row of the catalogue: the kind's stable name and its
// direct parent. Element (the root) has itself as parent and is handled as
// a base case by [IsSubtypeOf].
type entry struct {
	name   string
	parent ElementKind
}

// The catalogue below is declared in groups of related kinds so readers can
// trace the hierarchy; a few parents (FeatureMembership, ParameterMembership
// and LoopActionUsage among them) are declared after some of their children.
// This ordering is not required by any operation; IsSubtypeOf and the
// lookup maps work regardless of declaration order.
const (
	Element ElementKind = iota

	// Namespace hierarchy
	Namespace
	Package
	LibraryPackage

	// Membership (the "X is a member of namespace Y" relation)
	Membership
	OwningMembership
	Import
	NamespaceImport
	MembershipImport
	ElementFilterMembership
	ResultExpressionMembership
	ReturnParameterMembership
	ParameterMembership
	FeatureMembership
	EndFeatureMembership
	VariantMembership
	ObjectiveMembership
	SubjectMembership
	ActorMembership
	StakeholderMembership
	FramedConcernMembership
	RequirementConstraintMembership
	RequirementVerificationMembership
	StateSubactionMembership
	TransitionFeatureMembership

	// Type hierarchy
	Type
	Classifier
	Class
	DataType
	Structure
	Association
	AssociationStructure
	Interaction
	Behavior
	Function
	Predicate
	Metaclass

	// Feature hierarchy
	Feature
	Step
	Expression
	BooleanExpression
	InvocationExpression
	FeatureReferenceExpression
	OperatorExpression
	LiteralExpression
	LiteralInteger
	LiteralBoolean
	LiteralString
	LiteralRational
	LiteralInfinity
	NullExpression
	FeatureChainExpression
	SelectExpression
	CollectExpression
	IndexExpression
	MetadataAccessExpression
	InstantiationExpression
	TriggerInvocationExpression

	// Relationships realized as first-class elements
	Specialization
	Subclassification
	Subsetting
	Redefinition
	FeatureTyping
	Conjugation
	Disjoining
	Differencing
	Intersecting
	Unioning
	Dependency
	Annotation
	AnnotatingElement
	Comment
	Documentation
	TextualRepresentation
	Expose

	// Connector / flow relationships
	Connector
	BindingConnector
	Succession
	ItemFlow
	SuccessionItemFlow

	// Definitions and usages (the bulk of authored models)
	PartDefinition
	PartUsage
	AttributeDefinition
	AttributeUsage
	PortDefinition
	PortUsage
	ItemDefinition
	ItemUsage
	ConnectionDefinition
	ConnectionUsage
	InterfaceDefinition
	InterfaceUsage
	FlowConnectionDefinition
	FlowConnectionUsage
	AllocationDefinition
	AllocationUsage
	ActionDefinition
	ActionUsage
	CalculationDefinition
	CalculationUsage
	StateDefinition
	StateUsage
	TransitionUsage
	ConstraintDefinition
	ConstraintUsage
	RequirementDefinition
	RequirementUsage
	ConcernDefinition
	ConcernUsage
	CaseDefinition
	CaseUsage
	AnalysisCaseDefinition
	AnalysisCaseUsage
	VerificationCaseDefinition
	VerificationCaseUsage
	UseCaseDefinition
	UseCaseUsage
	ViewDefinition
	ViewUsage
	ViewpointDefinition
	ViewpointUsage
	RenderingDefinition
	RenderingUsage
	MetadataDefinition
	MetadataUsage
	EnumerationDefinition
	EnumerationUsage
	OccurrenceDefinition
	OccurrenceUsage
	EventOccurrenceUsage
	PerformActionUsage
	AcceptActionUsage
	SendActionUsage
	AssignmentActionUsage
	TerminateActionUsage
	ForLoopActionUsage
	WhileLoopActionUsage
	LoopActionUsage
	IfActionUsage

	// Supporting value types
	Multiplicity
	MultiplicityRange
	FeatureValue
	Invariant

	// numKinds is a sentinel marking the end of the catalogue; it is never a
	// valid ElementKind value on an element.
	numKinds
)

// catalogue is indexed by ElementKind. Every entry but Element's declares a
// parent, and every parent chain ends at Element; a parent does not always
// appear earlier in this literal than its children.
var catalogue = [numKinds]entry{
	Element: {"Element", Element},

	Namespace:       {"Namespace", Element},
	Package:         {"Package", Namespace},
	LibraryPackage:  {"LibraryPackage", Package},

	Membership:                        {"Membership", Element},
	OwningMembership:                  {"OwningMembership", Membership},
	Import:                            {"Import", Membership},
	NamespaceImport:                   {"NamespaceImport", Import},
	MembershipImport:                  {"MembershipImport", Import},
	ElementFilterMembership:           {"ElementFilterMembership", Membership},
	ResultExpressionMembership:        {"ResultExpressionMembership", FeatureMembership},
	ReturnParameterMembership:         {"ReturnParameterMembership", ParameterMembership},
	ParameterMembership:               {"ParameterMembership", FeatureMembership},
	FeatureMembership:                 {"FeatureMembership", OwningMembership},
	EndFeatureMembership:              {"EndFeatureMembership", FeatureMembership},
	VariantMembership:                 {"VariantMembership", FeatureMembership},
	ObjectiveMembership:               {"ObjectiveMembership", FeatureMembership},
	SubjectMembership:                 {"SubjectMembership", FeatureMembership},
	ActorMembership:                   {"ActorMembership", FeatureMembership},
	StakeholderMembership:             {"StakeholderMembership", FeatureMembership},
	FramedConcernMembership:           {"FramedConcernMembership", FeatureMembership},
	RequirementConstraintMembership:   {"RequirementConstraintMembership", FeatureMembership},
	RequirementVerificationMembership: {"RequirementVerificationMembership", FeatureMembership},
	StateSubactionMembership:          {"StateSubactionMembership", FeatureMembership},
	TransitionFeatureMembership:       {"TransitionFeatureMembership", FeatureMembership},

	Type:                  {"Type", Namespace},
	Classifier:            {"Classifier", Type},
	Class:                 {"Class", Classifier},
	DataType:              {"DataType", Classifier},
	Structure:             {"Structure", Class},
	Association:           {"Association", Classifier},
	AssociationStructure:  {"AssociationStructure", Association},
	Interaction:           {"Interaction", Association},
	Behavior:              {"Behavior", Class},
	Function:              {"Function", Behavior},
	Predicate:             {"Predicate", Function},
	Metaclass:             {"Metaclass", Class},

	Feature:                     {"Feature", Type},
	Step:                        {"Step", Feature},
	Expression:                  {"Expression", Step},
	BooleanExpression:           {"BooleanExpression", Expression},
	InvocationExpression:        {"InvocationExpression", Expression},
	FeatureReferenceExpression:  {"FeatureReferenceExpression", Expression},
	OperatorExpression:          {"OperatorExpression", InvocationExpression},
	LiteralExpression:           {"LiteralExpression", Expression},
	LiteralInteger:              {"LiteralInteger", LiteralExpression},
	LiteralBoolean:              {"LiteralBoolean", LiteralExpression},
	LiteralString:               {"LiteralString", LiteralExpression},
	LiteralRational:             {"LiteralRational", LiteralExpression},
	LiteralInfinity:             {"LiteralInfinity", LiteralExpression},
	NullExpression:              {"NullExpression", LiteralExpression},
	FeatureChainExpression:      {"FeatureChainExpression", OperatorExpression},
	SelectExpression:            {"SelectExpression", OperatorExpression},
	CollectExpression:           {"CollectExpression", OperatorExpression},
	IndexExpression:             {"IndexExpression", OperatorExpression},
	MetadataAccessExpression:    {"MetadataAccessExpression", Expression},
	InstantiationExpression:     {"InstantiationExpression", InvocationExpression},
	TriggerInvocationExpression: {"TriggerInvocationExpression", InvocationExpression},

	Specialization:        {"Specialization", Element},
	Subclassification:     {"Subclassification", Specialization},
	Subsetting:            {"Subsetting", Specialization},
	Redefinition:          {"Redefinition", Subsetting},
	FeatureTyping:         {"FeatureTyping", Specialization},
	Conjugation:           {"Conjugation", Element},
	Disjoining:            {"Disjoining", Element},
	Differencing:          {"Differencing", Element},
	Intersecting:          {"Intersecting", Element},
	Unioning:              {"Unioning", Element},
	Dependency:            {"Dependency", Element},
	Annotation:            {"Annotation", Element},
	AnnotatingElement:     {"AnnotatingElement", Element},
	Comment:               {"Comment", AnnotatingElement},
	Documentation:         {"Documentation", Comment},
	TextualRepresentation: {"TextualRepresentation", AnnotatingElement},
	Expose:                {"Expose", Import},

	Connector:            {"Connector", Feature},
	BindingConnector:     {"BindingConnector", Connector},
	Succession:           {"Succession", Connector},
	ItemFlow:             {"ItemFlow", Connector},
	SuccessionItemFlow:   {"SuccessionItemFlow", ItemFlow},

	PartDefinition:           {"PartDefinition", Structure},
	PartUsage:                {"PartUsage", Feature},
	AttributeDefinition:      {"AttributeDefinition", DataType},
	AttributeUsage:           {"AttributeUsage", Feature},
	PortDefinition:           {"PortDefinition", Structure},
	PortUsage:                {"PortUsage", Feature},
	ItemDefinition:           {"ItemDefinition", Structure},
	ItemUsage:                {"ItemUsage", Feature},
	ConnectionDefinition:     {"ConnectionDefinition", AssociationStructure},
	ConnectionUsage:          {"ConnectionUsage", Connector},
	InterfaceDefinition:      {"InterfaceDefinition", ConnectionDefinition},
	InterfaceUsage:           {"InterfaceUsage", ConnectionUsage},
	FlowConnectionDefinition: {"FlowConnectionDefinition", ConnectionDefinition},
	FlowConnectionUsage:      {"FlowConnectionUsage", ItemFlow},
	AllocationDefinition:     {"AllocationDefinition", ConnectionDefinition},
	AllocationUsage:          {"AllocationUsage", ConnectionUsage},
	ActionDefinition:         {"ActionDefinition", Behavior},
	ActionUsage:              {"ActionUsage", Step},
	CalculationDefinition:    {"CalculationDefinition", Function},
	CalculationUsage:         {"CalculationUsage", ActionUsage},
	StateDefinition:          {"StateDefinition", ActionDefinition},
	StateUsage:               {"StateUsage", ActionUsage},
	TransitionUsage:          {"TransitionUsage", ActionUsage},
	ConstraintDefinition:     {"ConstraintDefinition", Predicate},
	ConstraintUsage:          {"ConstraintUsage", BooleanExpression},
	RequirementDefinition:    {"RequirementDefinition", ConstraintDefinition},
	RequirementUsage:         {"RequirementUsage", ConstraintUsage},
	ConcernDefinition:        {"ConcernDefinition", RequirementDefinition},
	ConcernUsage:             {"ConcernUsage", RequirementUsage},
	CaseDefinition:           {"CaseDefinition", ActionDefinition},
	CaseUsage:                {"CaseUsage", ActionUsage},
	AnalysisCaseDefinition:   {"AnalysisCaseDefinition", CaseDefinition},
	AnalysisCaseUsage:        {"AnalysisCaseUsage", CaseUsage},
	VerificationCaseDefinition: {"VerificationCaseDefinition", CaseDefinition},
	VerificationCaseUsage:      {"VerificationCaseUsage", CaseUsage},
	UseCaseDefinition:          {"UseCaseDefinition", CaseDefinition},
	UseCaseUsage:               {"UseCaseUsage", CaseUsage},
	ViewDefinition:             {"ViewDefinition", PartDefinition},
	ViewUsage:                  {"ViewUsage", PartUsage},
	ViewpointDefinition:        {"ViewpointDefinition", RequirementDefinition},
	ViewpointUsage:             {"ViewpointUsage", RequirementUsage},
	RenderingDefinition:        {"RenderingDefinition", PartDefinition},
	RenderingUsage:             {"RenderingUsage", PartUsage},
	MetadataDefinition:         {"MetadataDefinition", Metaclass},
	MetadataUsage:              {"MetadataUsage", AnnotatingElement},
	EnumerationDefinition:      {"EnumerationDefinition", AttributeDefinition},
	EnumerationUsage:           {"EnumerationUsage", AttributeUsage},
	OccurrenceDefinition:       {"OccurrenceDefinition", Class},
	OccurrenceUsage:            {"OccurrenceUsage", Feature},
	EventOccurrenceUsage:       {"EventOccurrenceUsage", OccurrenceUsage},
	PerformActionUsage:         {"PerformActionUsage", ActionUsage},
	AcceptActionUsage:          {"AcceptActionUsage", ActionUsage},
	SendActionUsage:            {"SendActionUsage", ActionUsage},
	AssignmentActionUsage:      {"AssignmentActionUsage", ActionUsage},
	TerminateActionUsage:       {"TerminateActionUsage", ActionUsage},
	ForLoopActionUsage:         {"ForLoopActionUsage", LoopActionUsage},
	WhileLoopActionUsage:       {"WhileLoopActionUsage", LoopActionUsage},
	LoopActionUsage:            {"LoopActionUsage", ActionUsage},
	IfActionUsage:              {"IfActionUsage", ActionUsage},

	Multiplicity:      {"Multiplicity", Element},
	MultiplicityRange: {"MultiplicityRange", Multiplicity},
	FeatureValue:      {"FeatureValue", OwningMembership},
	Invariant:         {"Invariant", ConstraintUsage},
}

// nameIndex supports String() -> ElementKind lookups such as diagnostic
// rendering and ingest catalogue cross-validation.
var nameIndex = func() map[string]ElementKind {
	m := make(map[string]ElementKind, numKinds)
	for k := ElementKind(0); k < numKinds; k++ {
		m[catalogue[k].name] = k
	}
	return m
}()

// String returns the kind's stable catalogue name, or "ElementKind(n)" for
// an out-of-range value.
func (k ElementKind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("ElementKind(%d)", uint16(k))
	}
	return catalogue[k].name
}

// IsValid reports whether k is a defined member of the catalogue.
func (k ElementKind) IsValid() bool {
	return k < numKinds
}

// ByName looks up an ElementKind by its catalogue name.
func ByName(name string) (ElementKind, bool) {
	k, ok := nameIndex[name]
	return k, ok
}

// AllKinds returns every defined kind, in catalogue declaration order.
func AllKinds() []ElementKind {
	kinds := make([]ElementKind, numKinds)
	for k := ElementKind(0); k < numKinds; k++ {
		kinds[k] = k
	}
	return kinds
}

// Count returns the number of kinds in the catalogue.
func Count() int {
	return int(numKinds)
}

// Parent returns k's direct parent. Element is its own parent; callers
// walking to the root should stop once Parent returns the same value they
// passed in.
func Parent(k ElementKind) ElementKind {
	if !k.IsValid() {
		return Element
	}
	return catalogue[k].parent
}

// IsSubtypeOf reports whether child is ancestor or a transitive subtype of
// ancestor, walking the parent-link table up to [maxSubtypeDepth] steps.
// Every kind is trivially a subtype of itself and of Element.
func IsSubtypeOf(child, ancestor ElementKind) bool {
	current := child
	for depth := 0; depth <= maxSubtypeDepth; depth++ {
		if current == ancestor {
			return true
		}
		if current == Element {
			return current == ancestor
		}
		next := Parent(current)
		if next == current {
			return current == ancestor
		}
		current = next
	}
	return false
}
