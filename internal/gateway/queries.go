package gateway

// GraphQL documents sent to the gateway. Field selections mirror what the
// listing and dashboard screens consume; the nested product snapshot on
// order lines is what makes the per-tab aggregation possible without a
// second round trip.

const queryCustomerTabs = `
query GetCustomerTabs {
  customerTabs {
    id
    name
    status
    createdAt
    updatedAt
    table {
      id
      code
    }
    orders {
      id
      status
      customerTabId
      createdAt
      updatedAt
      products {
        productId
        quantity
        totalPrice
        product {
          id
          name
          price
          isPricePerKg
        }
      }
    }
  }
}`

const queryCustomerTabsByStatus = `
query GetCustomerTabsByStatus($status: CustomerTabStatusEnum!) {
  customerTabs(status: $status) {
    id
    name
    status
    createdAt
    updatedAt
    table {
      id
      code
    }
    orders {
      id
      status
      customerTabId
      createdAt
      updatedAt
      products {
        productId
        quantity
        totalPrice
        product {
          id
          name
          price
          isPricePerKg
        }
      }
    }
  }
}`

const queryOrders = `
query GetOrders {
  orders {
    id
    status
    customerTabId
    createdAt
    updatedAt
    products {
      productId
      quantity
      totalPrice
      product {
        id
        name
        price
        isPricePerKg
      }
    }
  }
}`

const queryOrderByID = `
query GetOrderById($id: UUID!) {
  orderById(id: $id) {
    id
    status
    customerTabId
    createdAt
    updatedAt
    products {
      productId
      quantity
      totalPrice
      product {
        id
        name
        price
        isPricePerKg
      }
    }
  }
}`

const queryTables = `
query GetTables {
  tables {
    id
    code
    status
  }
}`

const queryProducts = `
query GetProducts {
  products {
    id
    name
    price
    code
    needPreparation
    isPricePerKg
    productCategoryId
    productCategory {
      id
      name
      icon
    }
  }
}`

const queryProductCategories = `
query GetProductCategories {
  productCategories {
    id
    name
    icon
  }
}`

const mutationCreateCustomerTab = `
mutation CreateCustomerTab($input: CreateCustomerTabCommandInput!) {
  createCustomerTab(input: $input) {
    id
    name
    status
    createdAt
    updatedAt
    table {
      id
      code
    }
  }
}`

const mutationCreateOrder = `
mutation CreateOrder($customerTabId: UUID, $products: [CreateOrderProductInput!]!) {
  createOrder(customerTabId: $customerTabId, products: $products) {
    id
    status
    customerTabId
    createdAt
    updatedAt
    products {
      productId
      quantity
      totalPrice
      product {
        id
        name
        price
        isPricePerKg
      }
    }
  }
}`

const mutationCloseOrder = `
mutation CloseOrder($command: CloseOrderCommandInput!) {
  closeOrder(command: $command)
}`

const mutationCloseCustomerTab = `
mutation CloseCustomerTab($command: CloseCustomerTabCommandInput!) {
  closeCustomerTab(command: $command)
}`

const mutationDeleteCustomerTab = `
mutation DeleteCustomerTab($id: UUID!) {
  deleteCustomerTab(id: $id)
}`

const mutationDeleteOrder = `
mutation DeleteOrder($id: UUID!) {
  deleteOrder(id: $id)
}`

const mutationSendCustomerTabEmail = `
mutation SendCustomerTabEmail($customerTabId: UUID!, $email: String!) {
  sendCustomerTabEmail(customerTabId: $customerTabId, email: $email)
}`

const mutationCreateProduct = `
mutation CreateProduct($name: String!, $price: Decimal!, $productCategoryId: UUID, $isPricePerKg: Boolean) {
  createProduct(name: $name, price: $price, productCategoryId: $productCategoryId, isPricePerKg: $isPricePerKg) {
    id
    name
    price
    productCategoryId
    isPricePerKg
  }
}`

const mutationUpdateProduct = `
mutation UpdateProduct($id: UUID!, $name: String, $price: Decimal, $needPreparation: Boolean, $productCategoryId: UUID, $isPricePerKg: Boolean) {
  updateProduct(id: $id, name: $name, price: $price, needPreparation: $needPreparation, productCategoryId: $productCategoryId, isPricePerKg: $isPricePerKg)
}`

const mutationDeleteProduct = `
mutation DeleteProduct($id: UUID!) {
  deleteProduct(id: $id)
}`

const mutationCreateProductCategory = `
mutation CreateProductCategory($name: String!, $icon: String) {
  createProductCategory(name: $name, icon: $icon) {
    id
    name
    icon
  }
}`

const mutationCreateTable = `
mutation CreateTable {
  createTable {
    id
    code
    status
  }
}`

const mutationAuthenticateWithGoogle = `
mutation AuthenticateWithGoogle($idToken: String!) {
  authenticateWithGoogle(idToken: $idToken) {
    jwtToken
    email
    role
  }
}`
